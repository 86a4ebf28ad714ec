package ports

// HostScanner lists the `Host` entries declared in an ssh config file.
type HostScanner interface {
	// DefinedHosts returns host names in file order, duplicates included.
	DefinedHosts() ([]string, error)
}
