package spec

// SecurityRequirement lists the required security schemes to execute an
// operation, mapping scheme names to the scopes they require (empty for
// schemes that do not use scopes)
type SecurityRequirement map[string][]string

// SecurityScheme defines a security scheme that can be used by the operations
type SecurityScheme struct {
	Type        SecuritySchemeType `oas:"type"`
	Description string             `oas:"description,omitempty"`

	// Type: apiKey
	Name string            `oas:"name,omitempty"`
	In   ParameterLocation `oas:"in,omitempty"`

	// Type: http
	Scheme       string `oas:"scheme,omitempty"`
	BearerFormat string `oas:"bearerFormat,omitempty"`

	// Type: oauth2
	Flows *OAuthFlows `oas:"flows,omitempty"`

	// Type: openIdConnect
	OpenIDConnectURL string `oas:"openIdConnectUrl,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// OAuthFlows allows configuration of the supported OAuth flows
type OAuthFlows struct {
	Implicit          *OAuthFlow `oas:"implicit,omitempty"`
	Password          *OAuthFlow `oas:"password,omitempty"`
	ClientCredentials *OAuthFlow `oas:"clientCredentials,omitempty"`
	AuthorizationCode *OAuthFlow `oas:"authorizationCode,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// OAuthFlow represents configuration for a single OAuth flow
type OAuthFlow struct {
	AuthorizationURL string            `oas:"authorizationUrl,omitempty"`
	TokenURL         string            `oas:"tokenUrl,omitempty"`
	RefreshURL       string            `oas:"refreshUrl,omitempty"`
	Scopes           map[string]string `oas:"scopes"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}
