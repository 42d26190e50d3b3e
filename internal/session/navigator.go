package session

// Locations the client navigates to.
const (
	HomePath  = "/"
	LoginPath = "/login/"
)

// PublicPaths are the locations exempt from the forced redirect to the
// login page after an unrecoverable session failure.
var PublicPaths = []string{"/", "/login/", "/register/", "/privacy/", "/terms/"}

// Navigator is the surface the client redirects when a session ends.
type Navigator interface {
	// Location returns the path currently shown.
	Location() string
	// Navigate switches to path.
	Navigate(path string)
}

// IsPublicPath reports whether path is in PublicPaths. Matching is exact:
// "/login" and "/login/?next=x" are not public.
func IsPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if p == path {
			return true
		}
	}
	return false
}

type nopNavigator struct{}

func (nopNavigator) Location() string { return "" }
func (nopNavigator) Navigate(string)  {}
