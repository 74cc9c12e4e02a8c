// Package native controls processes through ptrace(2) so that the stacks of
// their threads can be walked: it attaches to running processes, launches
// new ones and waits for them to fault.
package native
