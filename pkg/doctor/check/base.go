package check

// Base provides common check metadata through composition. Embed it in check
// implementations to eliminate boilerplate.
//
// Example usage:
//
//	type WritableCheck struct {
//	    check.Base
//	}
//
//	func NewWritableCheck() *WritableCheck {
//	    return &WritableCheck{
//	        Base: check.Base{
//	            CheckID:          "install.writable",
//	            CheckDescription: "Verifies the installation root is writable",
//	            CheckStage:       check.StagePreInit,
//	        },
//	    }
//	}
//
// A zero CheckStage means the check runs immediately, with no host hook.
type Base struct {
	CheckID          string
	CheckDescription string
	CheckStage       Stage
}

// ID returns the unique identifier for this check.
func (b Base) ID() string {
	return b.CheckID
}

// Description returns what this check validates.
func (b Base) Description() string {
	return b.CheckDescription
}

// Stage returns the bootstrap stage this check must run at.
func (b Base) Stage() Stage {
	return b.CheckStage.Normalize()
}
