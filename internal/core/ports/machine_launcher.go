package ports

// MachineLauncher makes a machine reachable over ssh for one provider.
type MachineLauncher interface {
	Launch(alias string) error
}
