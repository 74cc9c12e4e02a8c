// Package frame walks the call stack of a thread one frame at a time.
//
// A Cursor is initialized from a register dump, from the context delivered
// to a signal handler, or from a stopped thread. Each call to Next discovers
// the caller of the current frame by following the frame pointer chain in
// the memory of the target task. Only the registers that could be recovered
// for a frame are marked valid in it.
//
// The walk path allocates nothing, takes no locks and never blocks, so that
// it can run on a thread that has just faulted as well as on a reporter
// thread looking at a suspended target. Every operation reports its outcome
// as an Error code; a walk that hits a corrupted frame stops there and keeps
// the frames collected so far.
package frame
