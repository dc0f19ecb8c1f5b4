package gmpcoro

import "errors"

// ErrAlreadyWaited is returned by Wait (and surfaced through WaitAny) when a
// task has already been joined once, by this caller or another. A task may
// only ever be waited on by a single joiner; the first Wait call claims it.
var ErrAlreadyWaited = errors.New("gmpcoro: task has already been waited on by another joiner")
