package spec

// ParameterLocation identifies where a parameter is passed.
// Reference: https://spec.openapis.org/oas/v3.0.3.html#parameter-locations
type ParameterLocation string

const (
	// InQuery indicates the parameter is passed in the query string
	InQuery ParameterLocation = "query"
	// InHeader indicates the parameter is passed in a request header
	InHeader ParameterLocation = "header"
	// InPath indicates the parameter is part of the URL path
	InPath ParameterLocation = "path"
	// InCookie indicates the parameter is passed as a cookie
	InCookie ParameterLocation = "cookie"
)

// SecuritySchemeType identifies the kind of a security scheme.
type SecuritySchemeType string

const (
	// SecurityAPIKey is an API key passed via header, query, or cookie
	SecurityAPIKey SecuritySchemeType = "apiKey"
	// SecurityHTTP is an HTTP authentication scheme (e.g. basic, bearer)
	SecurityHTTP SecuritySchemeType = "http"
	// SecurityOAuth2 is an OAuth 2.0 flow
	SecurityOAuth2 SecuritySchemeType = "oauth2"
	// SecurityOpenIDConnect is OpenID Connect Discovery
	SecurityOpenIDConnect SecuritySchemeType = "openIdConnect"
)

// DataType is one of the six primitive schema types defined by OAS 3.0.
type DataType string

const (
	TypeArray   DataType = "array"
	TypeBoolean DataType = "boolean"
	TypeInteger DataType = "integer"
	TypeNumber  DataType = "number"
	TypeObject  DataType = "object"
	TypeString  DataType = "string"
)

// DataFormat is an open vocabulary of schema format hints.
// The OAS defines a starting set; any string is permitted.
type DataFormat string

const (
	FormatInt32    DataFormat = "int32"
	FormatInt64    DataFormat = "int64"
	FormatFloat    DataFormat = "float"
	FormatDouble   DataFormat = "double"
	FormatByte     DataFormat = "byte"
	FormatBinary   DataFormat = "binary"
	FormatDate     DataFormat = "date"
	FormatDateTime DataFormat = "date-time"
	FormatDuration DataFormat = "duration"
	FormatEmail    DataFormat = "email"
	FormatHostname DataFormat = "hostname"
	FormatIPv4     DataFormat = "ipv4"
	FormatIPv6     DataFormat = "ipv6"
	FormatPassword DataFormat = "password"
	FormatURI      DataFormat = "uri"
	FormatUUID     DataFormat = "uuid"
)

// Parameter serialization style constants (Parameter.Style, Encoding.Style).
const (
	StyleMatrix         = "matrix"
	StyleLabel          = "label"
	StyleForm           = "form"
	StyleSimple         = "simple"
	StyleSpaceDelimited = "spaceDelimited"
	StylePipeDelimited  = "pipeDelimited"
	StyleDeepObject     = "deepObject"
)

// ExtensionPrefix is the required prefix for specification extension keys.
const ExtensionPrefix = "x-"
