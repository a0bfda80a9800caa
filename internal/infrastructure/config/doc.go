// Package config loads runtime configuration from the environment.
//
// Every setting has a default, so an empty environment yields a working
// setup: the A:/Alteron mount with System.dir and Config.dir protected and
// the usual external programs (wine, darling, dpkg, bash, python3, node, java)
// looked up on PATH.
package config
