package vecmmap

import "github.com/hupe1980/vecmmap/internal/errs"

var (
	// ErrIO is returned when a file cannot be created, sized, copied, mapped
	// or flushed. The underlying error is kept in the chain.
	ErrIO = errs.ErrIO

	// ErrInvalidArgument is returned for requests the stores reject without
	// touching disk, such as shrinking a FlagStore.
	ErrInvalidArgument = errs.ErrInvalidArgument

	// ErrCorruptState is returned when the on-disk layout is inconsistent:
	// a missing chunk id or an unreadable status record.
	ErrCorruptState = errs.ErrCorruptState
)
