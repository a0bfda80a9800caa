package types

// ProcessResult is the captured result of an external collaborator process
type ProcessResult struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// Succeeded reports a zero exit code
func (r *ProcessResult) Succeeded() bool {
	return r != nil && r.ExitCode == 0
}

// Outcome is the structured result of a dispatch
type Outcome struct {
	Success  bool                   `json:"success"`
	Platform Platform               `json:"platform"`
	Op       Operation              `json:"operation"`
	Handler  string                 `json:"handler,omitempty"`
	Output   string                 `json:"output,omitempty"`
	Error    *Error                 `json:"error,omitempty"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

// Err returns the typed failure, or nil on success
func (o *Outcome) Err() error {
	if o == nil || o.Success || o.Error == nil {
		return nil
	}
	return o.Error
}

// Succeed builds a successful outcome
func Succeed(platform Platform, op Operation, handler, output string) *Outcome {
	return &Outcome{Success: true, Platform: platform, Op: op, Handler: handler, Output: output}
}

// Fail builds a failed outcome
func Fail(platform Platform, op Operation, handler string, err *Error) *Outcome {
	return &Outcome{Platform: platform, Op: op, Handler: handler, Error: err}
}
