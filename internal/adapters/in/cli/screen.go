package cli

// Screen identifies what the shell currently shows.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenSignup
	ScreenOrderList
	ScreenOrderDetail
	ScreenAccount
)

var screenHeaders = map[Screen]Header{
	ScreenLogin:       {Title: "Login"},
	ScreenSignup:      {Title: "Sign Up", ShowBack: true},
	ScreenOrderList:   {Title: "Delivery Orders", ShowAccount: true},
	ScreenOrderDetail: {Title: "Order Detail", ShowBack: true, ShowAccount: true},
	ScreenAccount:     {Title: "My Account", ShowBack: true},
}

// Header returns the banner configuration of s.
func (s Screen) Header() Header {
	return screenHeaders[s]
}

func (s Screen) String() string {
	if h, ok := screenHeaders[s]; ok {
		return h.Title
	}
	return "Unknown"
}
