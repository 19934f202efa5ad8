package app

// Advisory is a user-facing message about a request that changed nothing.
// It is never fatal.
type Advisory struct {
	Title   string
	Message string
	Err     error
}

func (a *Advisory) Error() string {
	return a.Title + ": " + a.Message
}

func (a *Advisory) Unwrap() error {
	return a.Err
}
