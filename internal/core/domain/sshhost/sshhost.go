/*
Package sshhost defines the ssh config block generated for a machine.
*/
package sshhost

import (
	"fmt"
	"strings"
)

/*
Block is a single `Host` stanza in ssh config syntax.
KnownHostsFile is used for both UserKnownHostsFile and GlobalKnownHostsFile.
*/
type Block struct {
	Alias                 string
	Hostname              string
	User                  string
	StrictHostKeyChecking bool
	KnownHostsFile        string
}

// Render formats the block as ssh config text, terminated by a newline.
func (b Block) Render() string {
	strict := "no"
	if b.StrictHostKeyChecking {
		strict = "yes"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Host %s\n", b.Alias)
	fmt.Fprintf(&sb, "    Hostname %s\n", b.Hostname)
	if b.User != "" {
		fmt.Fprintf(&sb, "    User %s\n", b.User)
	}
	fmt.Fprintf(&sb, "    StrictHostKeyChecking %s\n", strict)
	if b.KnownHostsFile != "" {
		fmt.Fprintf(&sb, "    UserKnownHostsFile %s\n", b.KnownHostsFile)
		fmt.Fprintf(&sb, "    GlobalKnownHostsFile %s\n", b.KnownHostsFile)
	}
	return sb.String()
}
