package api

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/guonaihong/gout"
	"github.com/spf13/cast"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

// HTTPClient talks to the remote service over HTTPS. Every call is a
// single attempt: no retries, no client-side timeout beyond whatever
// deadline the context carries. The token may be swapped while calls
// are in flight; each request snapshots it once.
type HTTPClient struct {
	baseURL string

	mu    sync.Mutex
	token string
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) bearer() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *HTTPClient) url(path string) string {
	return c.baseURL + "/" + path
}

func authHeader(token string) gout.H {
	return gout.H{"Authorization": "Bearer " + token}
}

// get performs an authenticated GET and unwraps the envelope.
// A missing token fails locally with ErrUnauthorized, no round-trip.
func (c *HTTPClient) get(ctx context.Context, path string) (*envelope, error) {
	token := c.bearer()
	if token == "" {
		return nil, ErrUnauthorized
	}
	var (
		code int
		body []byte
	)
	err := gout.GET(c.url(path)).
		WithContext(ctx).
		SetHeader(authHeader(token)).
		Code(&code).
		BindBody(&body).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return decodeEnvelope(code, body)
}

// postForm performs an authenticated POST with a multipart body and
// unwraps the envelope. PUT/DELETE semantics are expressed by the
// caller through a _method field in the form.
func (c *HTTPClient) postForm(ctx context.Context, path string, form gout.H) (*envelope, error) {
	token := c.bearer()
	if token == "" {
		return nil, ErrUnauthorized
	}
	var (
		code int
		body []byte
	)
	err := gout.POST(c.url(path)).
		WithContext(ctx).
		SetHeader(authHeader(token)).
		SetForm(form).
		Code(&code).
		BindBody(&body).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return decodeEnvelope(code, body)
}

// Login exchanges credentials for a bearer token and user record.
// On success the token is retained for subsequent calls.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	var (
		code int
		body []byte
	)
	err := gout.POST(c.url("login")).
		WithContext(ctx).
		SetForm(gout.H{"email": email, "password": password}).
		Code(&code).
		BindBody(&body).
		Do()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	env, err := decodeEnvelope(code, body)
	if err != nil {
		return "", nil, err
	}

	var data loginData
	if err := jsonx.Unmarshal(env.Data, &data); err != nil {
		return "", nil, fmt.Errorf("%w: decoding login data: %v", ErrUnavailable, err)
	}
	if data.Token == "" {
		return "", nil, fmt.Errorf("%w: login response without token", ErrUnavailable)
	}

	c.SetToken(data.Token)
	user := data.User.toModel()
	return data.Token, &user, nil
}

// UpdateProfile changes the account email and, when password is
// non-empty, the password of the logged-in user.
func (c *HTTPClient) UpdateProfile(ctx context.Context, email, password string) error {
	form := gout.H{"_method": "PUT", "email": email}
	if password != "" {
		form["password"] = password
	}
	_, err := c.postForm(ctx, "profile", form)
	return err
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	env, err := c.get(ctx, "categories")
	if err != nil {
		return nil, err
	}
	var rows []categoryRow
	if err := jsonx.Unmarshal(env.Data, &rows); err != nil {
		return nil, fmt.Errorf("%w: decoding categories: %v", ErrUnavailable, err)
	}
	out := make([]models.Category, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, cat models.Category) error {
	_, err := c.postForm(ctx, "categories", gout.H{
		"name":   cat.Name,
		"status": statusToWire(cat.Status),
	})
	return err
}

func (c *HTTPClient) UpdateCategory(ctx context.Context, cat models.Category) error {
	_, err := c.postForm(ctx, "categories/"+cat.ID, gout.H{
		"_method": "PUT",
		"name":    cat.Name,
		"status":  statusToWire(cat.Status),
	})
	return err
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, id string) error {
	_, err := c.postForm(ctx, "categories/"+id, gout.H{"_method": "DELETE"})
	return err
}

// Products live under "items" on the wire; the service predates the
// product naming.
func (c *HTTPClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	env, err := c.get(ctx, "items")
	if err != nil {
		return nil, err
	}
	var rows []productRow
	if err := jsonx.Unmarshal(env.Data, &rows); err != nil {
		return nil, fmt.Errorf("%w: decoding items: %v", ErrUnavailable, err)
	}
	out := make([]models.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

func (c *HTTPClient) CreateProduct(ctx context.Context, p models.Product) error {
	_, err := c.postForm(ctx, "items", gout.H{
		"name":        p.Name,
		"category_id": p.CategoryID,
		"status":      statusToWire(p.Status),
	})
	return err
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, p models.Product) error {
	_, err := c.postForm(ctx, "items/"+p.ID, gout.H{
		"_method":     "PUT",
		"name":        p.Name,
		"category_id": p.CategoryID,
		"status":      statusToWire(p.Status),
	})
	return err
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.postForm(ctx, "items/"+id, gout.H{"_method": "DELETE"})
	return err
}

func (c *HTTPClient) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	env, err := c.get(ctx, "employees")
	if err != nil {
		return nil, err
	}
	var rows []employeeRow
	if err := jsonx.Unmarshal(env.Data, &rows); err != nil {
		return nil, fmt.Errorf("%w: decoding employees: %v", ErrUnavailable, err)
	}
	out := make([]models.Employee, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

func (c *HTTPClient) CreateEmployee(ctx context.Context, e models.Employee) error {
	_, err := c.postForm(ctx, "employees", gout.H{
		"name":     e.Name,
		"email":    e.Email,
		"mobile":   e.Mobile,
		"salary":   cast.ToString(e.Salary),
		"status":   statusToWire(e.Status),
		"password": e.Password,
	})
	return err
}

// UpdateEmployee sends the password field only when it is non-empty;
// an empty password means "leave unchanged".
func (c *HTTPClient) UpdateEmployee(ctx context.Context, e models.Employee) error {
	form := gout.H{
		"_method": "PUT",
		"name":    e.Name,
		"email":   e.Email,
		"mobile":  e.Mobile,
		"salary":  cast.ToString(e.Salary),
		"status":  statusToWire(e.Status),
	}
	if e.Password != "" {
		form["password"] = e.Password
	}
	_, err := c.postForm(ctx, "employees/"+e.ID, form)
	return err
}

func (c *HTTPClient) DeleteEmployee(ctx context.Context, id string) error {
	_, err := c.postForm(ctx, "employees/"+id, gout.H{"_method": "DELETE"})
	return err
}

func (c *HTTPClient) CreateSalary(ctx context.Context, r models.SalaryRecord) error {
	_, err := c.postForm(ctx, "employee-salaries", gout.H{
		"employee_id": r.EmployeeID,
		"sal_date":    r.Date.Format(wireDateLayout),
		"advance":     cast.ToString(r.Advance),
		"others":      cast.ToString(r.Others),
		"note":        r.Note,
	})
	return err
}

func (c *HTTPClient) ListSalaries(ctx context.Context, employeeID string) ([]models.SalaryRecord, error) {
	env, err := c.get(ctx, "employee-salaries/"+employeeID)
	if err != nil {
		return nil, err
	}
	var rows []salaryRow
	if err := jsonx.Unmarshal(env.Data, &rows); err != nil {
		return nil, fmt.Errorf("%w: decoding salaries: %v", ErrUnavailable, err)
	}
	out := make([]models.SalaryRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

var _ Client = (*HTTPClient)(nil)
