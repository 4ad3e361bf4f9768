// Package errors provides the structured error type used across the world engine.
//
// Every error carries a Code. Two classes matter to callers:
//   - Fatal invariant violations (AlreadyExists, FailedPrecondition, Internal):
//     a generator broke one of its own guarantees, for example registering the
//     same dungeon entrance twice. The operation that raised it is aborted and
//     the world should be considered suspect.
//   - Input and storage errors (InvalidArgument, NotFound, OutOfRange,
//     Unavailable): the caller asked for something the engine cannot serve.
//
// Creating errors:
//
//	err := errors.InvalidArgumentf("minimum difference must be positive, got %d", min)
//	err := errors.AlreadyExistsf("dungeon entrance %s is already registered", point).
//	    WithMeta("point", point.String())
//
// Wrapping keeps the original code:
//
//	if err := creator.CreateDungeon(ctx, grid, point); err != nil {
//	    return errors.Wrapf(err, "failed to create dungeon at %s", point)
//	}
//
// Checking:
//
//	if errors.IsFatal(err) {
//	    // abort generation
//	}
//
// Configuration structs validate themselves through ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Rivers == nil {
//	    vb.RequiredField("Rivers")
//	}
//	return vb.Build()
package errors
