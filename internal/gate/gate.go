package gate

import "crypto/subtle"

// Settings configures a Gate. Empty fields fall back to the package defaults.
type Settings struct {
	Login          string
	Password       string
	ForwardTarget  string
	IncludeTarget  string
	FailureMessage string
}

// Gate is a single pass/fail decision on a submitted login/pwd pair.
// It holds no mutable state and is safe for concurrent use.
type Gate struct {
	login          []byte
	password       []byte
	forwardTarget  string
	includeTarget  string
	failureMessage string
}

// NewGate creates a Gate from the given settings.
func NewGate(s Settings) *Gate {
	return &Gate{
		login:          []byte(orDefault(s.Login, DefaultLogin)),
		password:       []byte(orDefault(s.Password, DefaultPassword)),
		forwardTarget:  orDefault(s.ForwardTarget, DefaultForwardTarget),
		includeTarget:  orDefault(s.IncludeTarget, DefaultIncludeTarget),
		failureMessage: orDefault(s.FailureMessage, DefaultFailureMessage),
	}
}

// HandleSubmission decides what to do with a submission. A nil login or pwd
// means the field was not submitted at all and yields a MissingParameterError.
// The comparison is exact: no trimming, case folding or normalization.
func (g *Gate) HandleSubmission(login, pwd *string) (Action, error) {
	var missing []string
	if login == nil {
		missing = append(missing, ParamLogin)
	}
	if pwd == nil {
		missing = append(missing, ParamPwd)
	}
	if len(missing) > 0 {
		return nil, &MissingParameterError{Params: missing}
	}

	// both halves are always compared
	loginOK := subtle.ConstantTimeCompare([]byte(*login), g.login) == 1
	pwdOK := subtle.ConstantTimeCompare([]byte(*pwd), g.password) == 1
	if loginOK && pwdOK {
		return Forward{Target: g.forwardTarget}, nil
	}

	return RenderThenInclude{
		Message: g.failureMessage,
		Target:  g.includeTarget,
	}, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
