package trace

// Shared log field names
const (
	LogUsername   = "username"
	LogCountryRef = "countryRef"
	LogURL        = "url"
	LogStatusCode = "status"
	LogSearch     = "search"
	LogPage       = "page"
	LogState      = "state"
)
