package steam

const (
	// clientJSTokenURI is the URI path of the who-am-I check.
	clientJSTokenURI = "chat/clientjstoken"
	// getRSAKeyURI is the URI path that issues the password encryption key.
	getRSAKeyURI = "login/getrsakey/"
	// doLoginURI is the URI path of the login submission.
	doLoginURI = "login/dologin/"
	// createBuyOrderURI is the URI path that places a market buy order.
	createBuyOrderURI = "market/createbuyorder/"
	// marketURI is the URI path of the market front page.
	marketURI = "market/"
	// marketListingsURI is the URI path prefix of market listing pages.
	marketListingsURI = "market/listings"
	// loginRefererURI is the login page the login endpoints expect as Referer.
	loginRefererURI = "login/home/?goto="
)

const (
	// refererHeader is the HTTP header name for Referer.
	refererHeader = "Referer"
	// captchaGIDNone tells Steam that no captcha was solved.
	captchaGIDNone = "-1"
	// tokenTypeNone requests the default token type.
	tokenTypeNone = "-1"
	// saveMyAddressNo keeps the billing address unsaved when placing orders.
	saveMyAddressNo = "0"
)
