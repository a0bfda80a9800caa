// Package compat implements the compatibility collaborators on top of
// external programs.
//
// Each collaborator shells out exactly once per call through a Runner:
//   - Wine: wine <exe> [args], wine msiexec /i <msi>
//   - Linux: dpkg -x <deb> <dir>, bash <script>, direct ELF exec
//   - Darling: darling shell <bin>, hdiutil attach, installer -pkg
//   - Interpreters: python3, node, java -jar
//
// A missing program is reported as CollaboratorUnavailable. Shell scripts and
// JavaScript fall back to in-process interpreters (mvdan.cc/sh and goja) when
// bash or node are not installed.
package compat
