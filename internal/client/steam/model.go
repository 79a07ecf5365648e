package steam

// ClientJSToken is the who-am-I check response.
type ClientJSToken struct {
	// LoggedIn reports whether the cookies sent belong to a live session.
	LoggedIn bool `json:"logged_in"`
	// SteamID is the 64-bit Steam ID of the session owner.
	SteamID string `json:"steamid"`
	// AccountID is the 32-bit account ID of the session owner.
	AccountID int64 `json:"accountid"`
	// AccountName is the login name of the session owner.
	AccountName string `json:"account_name"`
	// Token is the web chat token.
	Token string `json:"token"`
}

// RSAKeyResponse is the password encryption key issued for an account.
type RSAKeyResponse struct {
	// Success reports whether a key was issued.
	Success bool `json:"success"`
	// PublicKeyMod is the hex-encoded RSA modulus.
	PublicKeyMod string `json:"publickey_mod"`
	// PublicKeyExp is the hex-encoded RSA public exponent.
	PublicKeyExp string `json:"publickey_exp"`
	// Timestamp identifies the key and is echoed back on login.
	Timestamp string `json:"timestamp"`
	// TokenGID is an opaque key identifier.
	TokenGID string `json:"token_gid"`
	// Raw is the undecoded response body.
	Raw []byte `json:"-"`
}

// LoginRequest holds the per-attempt values of a login submission.
type LoginRequest struct {
	// AccountName is the Steam login name.
	AccountName string
	// EncryptedPassword is the base64 RSA ciphertext of the password.
	EncryptedPassword string
	// TwoFactorCode is the mobile authenticator code.
	TwoFactorCode string
	// RSATimestamp is the timestamp of the key the password was encrypted with.
	RSATimestamp string
}

// LoginResponse is the login submission response.
type LoginResponse struct {
	// Success reports whether the credentials were accepted.
	Success bool `json:"success"`
	// Message is a human-readable failure reason.
	Message string `json:"message"`
	// RequiresTwoFactor reports that a mobile authenticator code is required.
	RequiresTwoFactor bool `json:"requires_twofactor"`
	// EmailAuthNeeded reports that an emailed code is required.
	EmailAuthNeeded bool `json:"emailauth_needed"`
	// EmailDomain is the domain the Steam Guard email was sent to.
	EmailDomain string `json:"emaildomain"`
	// CaptchaNeeded reports that a captcha must be solved.
	CaptchaNeeded bool `json:"captcha_needed"`
	// LoginComplete reports that the login finished.
	LoginComplete bool `json:"login_complete"`
	// TransferURLs are the endpoints the session is transferred to.
	TransferURLs []string `json:"transfer_urls"`
	// TransferParameters carries the session tokens on success.
	TransferParameters *TransferParameters `json:"transfer_parameters"`
}

// TransferParameters carries the session tokens issued on successful login.
type TransferParameters struct {
	// SteamID is the 64-bit Steam ID of the account.
	SteamID string `json:"steamid"`
	// TokenSecure becomes the steamLoginSecure cookie.
	TokenSecure string `json:"token_secure"`
	// Auth is the transfer authentication token.
	Auth string `json:"auth"`
	// RememberLogin echoes the remember_login flag.
	RememberLogin bool `json:"remember_login"`
	// WebCookie becomes the steamMachineAuth<steamid> cookie.
	WebCookie string `json:"webcookie"`
}

// BuyOrderRequest describes a market buy order.
type BuyOrderRequest struct {
	// SessionID is the sessionid cookie value, echoed as a CSRF token.
	SessionID string
	// AppID is the Steam application ID of the item.
	AppID int
	// MarketHashName is the market name of the item.
	MarketHashName string
	// PriceTotal is the total price in the smallest currency unit.
	PriceTotal int64
	// Quantity is the number of items to buy.
	Quantity int
	// Currency is the Steam wallet currency code.
	Currency int
}

// BuyOrderResponse is the result of placing a buy order.
type BuyOrderResponse struct {
	// Success is the Steam result code (1 means the order was placed).
	Success int `json:"success"`
	// Message is a human-readable failure reason.
	Message string `json:"message"`
	// BuyOrderID identifies the placed order.
	BuyOrderID string `json:"buy_orderid"`
}

// ListingOptions tunes a listing page request.
type ListingOptions struct {
	// Proxy overrides the configured proxy for this request.
	Proxy string
	// WithLogin sends the session cookies with the request.
	WithLogin bool
}
