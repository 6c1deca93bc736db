package cmd

// hostResult records the outcome of one unit of fan-out work: a command on
// one host, or one (host, file) upload pair.
type hostResult struct {
	host     string
	file     string
	output   []byte
	exitCode int
	err      error
}
