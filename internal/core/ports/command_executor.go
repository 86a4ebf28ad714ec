package ports

/*
CommandExecutor runs external programs synchronously.
Both operations block until the child exits. They return an error only when the
child could not be spawned or waited on; the child's own exit status is not an error.
*/
type CommandExecutor interface {
	// Run executes the program with the caller's stdin, stdout and stderr attached.
	Run(name string, args ...string) error

	// Output executes the program and returns everything it wrote to stdout.
	Output(name string, args ...string) ([]byte, error)
}
