package services

// AuthServicer defines the contract for credential handling. The journal
// has a single owner and a single stored secret, so there is no user model:
// the first successful login creates the credential, later logins verify
// against it.
type AuthServicer interface {
	// Login checks the password against the stored credential hash. When no
	// credential exists yet, it stores a hash of the supplied password and
	// reports created=true. A non-matching password fails with
	// ErrInvalidCredentials.
	Login(password string) (created bool, err error)
}
