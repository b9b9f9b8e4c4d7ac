package gate

const (
	// Form field names
	ParamLogin = "login"
	ParamPwd   = "pwd"

	// Default credential pair and dispatch targets
	DefaultLogin          = "java"
	DefaultPassword       = "servlet" // #nosec G101
	DefaultForwardTarget  = "FwdDemo"
	DefaultIncludeTarget  = "/1.html"
	DefaultFailureMessage = "Incorrect Login id/Password"
)
