package check

// Target holds all context a check needs to execute against the host
// installation.
//
// How much of it is populated depends on the stage a check runs at: immediate
// and pre-init checks only see Root, config-loaded checks additionally see
// Config, and post-init checks see the fully resolved target including the
// detected host Version.
type Target struct {
	// Root is the host application installation root directory
	Root string

	// Config is the host application's own configuration, available from
	// the config-loaded stage onward. Nil before that.
	Config map[string]any

	// Version is the detected host application version, available from the
	// post-init stage onward. Empty when undetectable.
	Version string
}
