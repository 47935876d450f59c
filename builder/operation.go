package builder

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/erraggy/oasmodels/internal/httputil"
	"github.com/erraggy/oasmodels/spec"
)

// OperationOption configures an operation added with AddOperation.
type OperationOption func(*operationConfig)

// ParamOption customizes a parameter created by the With*Param options.
type ParamOption func(*spec.Parameter)

// RequestBodyOption customizes a request body created by WithRequestBody.
type RequestBodyOption func(*requestBodyConfig)

// ResponseOption customizes a response created by WithResponse.
type ResponseOption func(*responseConfig)

// operationConfig accumulates the state of one AddOperation call before
// validation and assembly.
type operationConfig struct {
	operationID string
	summary     string
	description string
	tags        []string
	deprecated  bool
	parameters  []*spec.Parameter
	paramTypes  map[*spec.Parameter]any
	requestBody *requestBodyConfig
	responses   []*responseConfig
	security    []spec.SecurityRequirement
	noSecurity  bool
	extensions  map[string]any
	badExtKeys  []string
}

type requestBodyConfig struct {
	contentType string
	bodyType    any
	schema      *spec.SchemaOrRef
	required    bool
	description string
}

type responseConfig struct {
	code         string
	description  string
	contentType  string
	responseType any
	schema       *spec.SchemaOrRef
	ref          string
	headers      map[string]*spec.HeaderOrRef
}

// WithOperationID sets the operation ID. Operation IDs share one namespace
// across the whole document; duplicates are a construction-time error.
func WithOperationID(id string) OperationOption {
	return func(cfg *operationConfig) {
		cfg.operationID = id
	}
}

// WithSummary sets the operation summary.
func WithSummary(summary string) OperationOption {
	return func(cfg *operationConfig) {
		cfg.summary = summary
	}
}

// WithDescription sets the operation description.
func WithDescription(desc string) OperationOption {
	return func(cfg *operationConfig) {
		cfg.description = desc
	}
}

// WithTags sets the operation tags.
func WithTags(tags ...string) OperationOption {
	return func(cfg *operationConfig) {
		cfg.tags = tags
	}
}

// WithDeprecated marks the operation as deprecated.
func WithDeprecated(deprecated bool) OperationOption {
	return func(cfg *operationConfig) {
		cfg.deprecated = deprecated
	}
}

// WithParameter adds a pre-built parameter to the operation. The parameter
// location is validated when the operation is added.
func WithParameter(param *spec.Parameter) OperationOption {
	return func(cfg *operationConfig) {
		cfg.parameters = append(cfg.parameters, param)
	}
}

// WithQueryParam adds a query parameter whose schema is generated from the
// given Go type.
func WithQueryParam(name string, paramType any, opts ...ParamOption) OperationOption {
	return typedParam(name, spec.InQuery, paramType, false, opts)
}

// WithPathParam adds a path parameter. Path parameters are always required.
func WithPathParam(name string, paramType any, opts ...ParamOption) OperationOption {
	return typedParam(name, spec.InPath, paramType, true, opts)
}

// WithHeaderParam adds a header parameter.
func WithHeaderParam(name string, paramType any, opts ...ParamOption) OperationOption {
	return typedParam(name, spec.InHeader, paramType, false, opts)
}

// WithCookieParam adds a cookie parameter.
func WithCookieParam(name string, paramType any, opts ...ParamOption) OperationOption {
	return typedParam(name, spec.InCookie, paramType, false, opts)
}

func typedParam(name string, in spec.ParameterLocation, paramType any, required bool, opts []ParamOption) OperationOption {
	return func(cfg *operationConfig) {
		param := &spec.Parameter{Name: name, In: in, Required: required}
		for _, opt := range opts {
			opt(param)
		}
		if in == spec.InPath {
			param.Required = true
		}
		cfg.parameters = append(cfg.parameters, param)
		if cfg.paramTypes == nil {
			cfg.paramTypes = make(map[*spec.Parameter]any)
		}
		cfg.paramTypes[param] = paramType
	}
}

// ParamDescription sets the parameter description.
func ParamDescription(desc string) ParamOption {
	return func(p *spec.Parameter) {
		p.Description = desc
	}
}

// ParamRequired marks the parameter as required.
func ParamRequired() ParamOption {
	return func(p *spec.Parameter) {
		p.Required = true
	}
}

// ParamDeprecated marks the parameter as deprecated.
func ParamDeprecated() ParamOption {
	return func(p *spec.Parameter) {
		p.Deprecated = true
	}
}

// ParamStyle sets the serialization style and explode flag.
func ParamStyle(style string, explode bool) ParamOption {
	return func(p *spec.Parameter) {
		p.Style = style
		p.Explode = &explode
	}
}

// ParamExample sets an example value for the parameter.
func ParamExample(example any) ParamOption {
	return func(p *spec.Parameter) {
		p.Example = example
	}
}

// WithRequestBody sets the request body. The schema is generated from the
// given Go type; the content type must be a valid media type.
func WithRequestBody(contentType string, bodyType any, opts ...RequestBodyOption) OperationOption {
	return func(cfg *operationConfig) {
		rb := &requestBodyConfig{
			contentType: contentType,
			bodyType:    bodyType,
			required:    true,
		}
		for _, opt := range opts {
			opt(rb)
		}
		cfg.requestBody = rb
	}
}

// WithRequestBodySchema sets the request body with a pre-built schema.
func WithRequestBodySchema(contentType string, schema *spec.SchemaOrRef, opts ...RequestBodyOption) OperationOption {
	return func(cfg *operationConfig) {
		rb := &requestBodyConfig{
			contentType: contentType,
			schema:      schema,
			required:    true,
		}
		for _, opt := range opts {
			opt(rb)
		}
		cfg.requestBody = rb
	}
}

// WithRequestBodyRequired sets whether the request body is required.
// Bodies added with WithRequestBody are required by default.
func WithRequestBodyRequired(required bool) RequestBodyOption {
	return func(rb *requestBodyConfig) {
		rb.required = required
	}
}

// WithRequestBodyDescription sets the request body description.
func WithRequestBodyDescription(desc string) RequestBodyOption {
	return func(rb *requestBodyConfig) {
		rb.description = desc
	}
}

// WithResponse adds a response keyed by numeric status code. The response
// schema is generated from the given Go type; pass nil for a bodyless
// response.
func WithResponse(statusCode int, responseType any, opts ...ResponseOption) OperationOption {
	return responseOption(strconv.Itoa(statusCode), responseType, opts)
}

// WithResponsePattern adds a response keyed by a wildcard pattern such as
// "2XX", or by "default". The key is validated when the operation is added.
func WithResponsePattern(pattern string, responseType any, opts ...ResponseOption) OperationOption {
	return responseOption(pattern, responseType, opts)
}

// WithDefaultResponse adds the "default" response of the operation.
func WithDefaultResponse(responseType any, opts ...ResponseOption) OperationOption {
	return responseOption("default", responseType, opts)
}

// WithResponseRef adds a response that references a components entry.
func WithResponseRef(statusCode int, ref string) OperationOption {
	return func(cfg *operationConfig) {
		cfg.responses = append(cfg.responses, &responseConfig{
			code: strconv.Itoa(statusCode),
			ref:  ref,
		})
	}
}

func responseOption(code string, responseType any, opts []ResponseOption) OperationOption {
	return func(cfg *operationConfig) {
		rc := &responseConfig{
			code:         code,
			contentType:  "application/json",
			responseType: responseType,
		}
		for _, opt := range opts {
			opt(rc)
		}
		cfg.responses = append(cfg.responses, rc)
	}
}

// WithResponseDescription sets the response description.
func WithResponseDescription(desc string) ResponseOption {
	return func(rc *responseConfig) {
		rc.description = desc
	}
}

// WithResponseContentType sets the response content type.
// The default is "application/json".
func WithResponseContentType(contentType string) ResponseOption {
	return func(rc *responseConfig) {
		rc.contentType = contentType
	}
}

// WithResponseHeader attaches a header definition to the response.
func WithResponseHeader(name string, header *spec.Header) ResponseOption {
	return func(rc *responseConfig) {
		if rc.headers == nil {
			rc.headers = make(map[string]*spec.HeaderOrRef)
		}
		rc.headers[name] = spec.Of(header)
	}
}

// WithSecurity sets the security requirements for the operation.
func WithSecurity(requirements ...spec.SecurityRequirement) OperationOption {
	return func(cfg *operationConfig) {
		cfg.security = requirements
	}
}

// WithNoSecurity explicitly marks the operation as requiring no security,
// overriding any document-level requirements.
func WithNoSecurity() OperationOption {
	return func(cfg *operationConfig) {
		cfg.noSecurity = true
	}
}

// WithOperationExtension adds a specification extension (x- key) to the
// operation. Keys without the x- prefix are a construction-time error.
func WithOperationExtension(key string, value any) OperationOption {
	return func(cfg *operationConfig) {
		if !strings.HasPrefix(key, spec.ExtensionPrefix) {
			cfg.badExtKeys = append(cfg.badExtKeys, key)
			return
		}
		if cfg.extensions == nil {
			cfg.extensions = make(map[string]any)
		}
		cfg.extensions[key] = value
	}
}

// AddOperation adds an operation for the given HTTP method and path.
// The method, response status codes, parameter locations, and extension keys
// are validated here; failures accumulate and are reported by Build.
func (b *Builder) AddOperation(method, path string, opts ...OperationOption) *Builder {
	if !httputil.ValidMethod(method) {
		b.errors = append(b.errors, newInvalidMethodError(method, path))
		return b
	}
	method = strings.ToLower(method)

	cfg := &operationConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	for _, key := range cfg.badExtKeys {
		b.errors = append(b.errors, newInvalidExtensionError(ComponentOperation, path, key))
	}

	if cfg.operationID != "" {
		if first, exists := b.operationIDs[cfg.operationID]; exists {
			b.errors = append(b.errors, newDuplicateOperationIDError(cfg.operationID, method, path, &first))
		} else {
			b.operationIDs[cfg.operationID] = operationLocation{Method: method, Path: path}
		}
	}

	op := &spec.Operation{
		Tags:        cfg.tags,
		Summary:     cfg.summary,
		Description: cfg.description,
		OperationID: cfg.operationID,
		Deprecated:  cfg.deprecated,
		Responses:   spec.Responses{},
		Extra:       cfg.extensions,
	}

	op.Parameters = b.buildParameters(cfg, method, path)
	op.RequestBody = b.buildRequestBody(cfg, method, path)
	b.buildResponses(cfg, op, method, path)

	if cfg.noSecurity {
		op.Security = []spec.SecurityRequirement{{}}
	} else if len(cfg.security) > 0 {
		op.Security = cfg.security
	}

	b.getOrCreatePathItem(path).SetOperation(method, op)
	return b
}

// buildParameters validates and assembles the parameter list for an
// operation, generating schemas for typed parameters.
func (b *Builder) buildParameters(cfg *operationConfig, method, path string) []*spec.ParameterOrRef {
	if len(cfg.parameters) == 0 {
		return nil
	}

	out := make([]*spec.ParameterOrRef, 0, len(cfg.parameters))
	for _, param := range cfg.parameters {
		if !validLocation(param.In) {
			b.errors = append(b.errors, newInvalidLocationError(method, path, cfg.operationID, param.Name, param.In))
			continue
		}
		if pType, ok := cfg.paramTypes[param]; ok && param.Schema == nil {
			param.Schema = b.schemaFor(pType)
		}
		out = append(out, spec.Of(param))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// buildRequestBody validates and assembles the request body, if any.
func (b *Builder) buildRequestBody(cfg *operationConfig, method, path string) *spec.RequestBodyOrRef {
	rb := cfg.requestBody
	if rb == nil {
		return nil
	}

	if !httputil.IsValidMediaType(rb.contentType) {
		b.errors = append(b.errors, &BuildError{
			Component:   ComponentRequestBody,
			Method:      method,
			Path:        path,
			OperationID: cfg.operationID,
			Field:       "contentType",
			Message:     "invalid media type " + strconv.Quote(rb.contentType),
		})
		return nil
	}

	schema := rb.schema
	if schema == nil {
		schema = b.schemaFor(rb.bodyType)
	}

	return spec.Of(&spec.RequestBody{
		Description: rb.description,
		Required:    rb.required,
		Content: map[string]*spec.MediaType{
			rb.contentType: {Schema: schema},
		},
	})
}

// buildResponses validates status codes and fills the operation's responses.
func (b *Builder) buildResponses(cfg *operationConfig, op *spec.Operation, method, path string) {
	for _, rc := range cfg.responses {
		if !httputil.ValidateStatusCode(rc.code) {
			b.errors = append(b.errors, newInvalidStatusCodeError(method, path, cfg.operationID, rc.code))
			continue
		}

		if rc.ref != "" {
			op.Responses[rc.code] = spec.RefTo[spec.Response](rc.ref)
			continue
		}

		resp := &spec.Response{
			Description: responseDescription(rc),
			Headers:     rc.headers,
		}
		if rc.responseType != nil || rc.schema != nil {
			schema := rc.schema
			if schema == nil {
				schema = b.schemaFor(rc.responseType)
			}
			resp.Content = map[string]*spec.MediaType{
				rc.contentType: {Schema: schema},
			}
		}
		op.Responses[rc.code] = spec.Of(resp)
	}
}

// responseDescription returns the configured description, falling back to
// the standard status text since OAS 3.0 requires one.
func responseDescription(rc *responseConfig) string {
	if rc.description != "" {
		return rc.description
	}
	if code, err := strconv.Atoi(rc.code); err == nil {
		if text := http.StatusText(code); text != "" {
			return text
		}
	}
	return rc.code
}
