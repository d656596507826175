// Command tablero es el panel de operación en terminal: órdenes, clientes y
// usuarios contra la API, con las mismas reglas de acceso por rol que el
// servidor hace cumplir.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/tu-usuario/logistica-api/internal/tablero/table"
	"github.com/tu-usuario/logistica-api/pkg/apiclient"
	"github.com/tu-usuario/logistica-api/pkg/config"
	"github.com/tu-usuario/logistica-api/pkg/logger"
	"github.com/tu-usuario/logistica-api/pkg/notify"
	"github.com/tu-usuario/logistica-api/pkg/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	sessionFile := cfg.Client.SessionFile
	if sessionFile == "" {
		home, _ := os.UserHomeDir()
		sessionFile = home + "/.tablero-session.json"
	}
	session := apiclient.NewSession(apiclient.NewFileStore(sessionFile), apiclient.NewMemStore())

	bus := notify.NewBus()
	opts := []apiclient.Option{}
	if cfg.App.Development() {
		opts = append(opts, apiclient.WithLogger(logger.New(logger.Config{Env: cfg.App.Env, Level: "debug"}).Zerolog()))
	}
	client := apiclient.New(cfg.Client.APIURL, session, bus, opts...)
	client.OnSessionExpired = func() {
		fmt.Fprintln(os.Stderr, "La sesión expiró. Inicia sesión de nuevo con: tablero login")
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	t := &tablero{client: client, bus: bus}
	cmd, args := os.Args[1], os.Args[2:]
	var cmdErr error
	switch cmd {
	case "login":
		cmdErr = t.login(args)
	case "logout":
		client.Logout()
		fmt.Println("Sesión cerrada.")
	case "orders":
		cmdErr = t.guarded(func() error { return t.orders(args) })
	case "order":
		cmdErr = t.guarded(func() error { return t.order(args) })
	case "order-add":
		cmdErr = t.guarded(func() error { return t.orderAdd(args) })
	case "advance":
		cmdErr = t.guarded(func() error { return t.advance(args) })
	case "upload":
		cmdErr = t.guarded(func() error { return t.upload(args) })
	case "pdf":
		cmdErr = t.guarded(func() error { return t.pdf(args) })
	case "customers":
		cmdErr = t.guarded(func() error { return t.customers(args) })
	case "customer-add":
		cmdErr = t.guardedWithRoles([]string{workflow.RoleAdmin}, func() error { return t.customerAdd(args) })
	case "search":
		cmdErr = t.guarded(func() error { return t.search(args) })
	case "users":
		cmdErr = t.guardedWithRoles([]string{workflow.RoleAdmin}, func() error { return t.users(args) })
	case "user-add":
		cmdErr = t.guardedWithRoles([]string{workflow.RoleAdmin}, func() error { return t.userAdd(args) })
	case "lookup":
		// Consulta pública: sin sesión.
		cmdErr = t.lookup(args)
	default:
		usage()
		os.Exit(2)
	}

	t.flushNotifications()
	if cmdErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", cmdErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Uso: tablero <comando> [opciones]

Comandos:
  login -email <email> -password <pass> [-remember]
  logout
  orders [-page N] [-limit N] [-status S]
  order <id>
  order-add -customer <número> [-address A] [-notes N]
  advance <id>
  upload <id> <archivo>
  pdf <id> [-o archivo]
  customers [-page N] [-limit N]
  customer-add -name N -fiscal F -address A -phone 10dígitos
  search <término>
  users [-page N] [-limit N]
  user-add -name N -email E -password P -role R
  lookup <númeroCliente> <númeroOrden>`)
}

type tablero struct {
	client *apiclient.Client
	bus    *notify.Bus
}

// guarded exige sesión; sin ella manda al login.
func (t *tablero) guarded(fn func() error) error {
	return t.guardedWithRoles(nil, fn)
}

// guardedWithRoles además exige uno de los roles. Un rol insuficiente regresa
// al tablero de órdenes, nunca al login.
func (t *tablero) guardedWithRoles(roles []string, fn func() error) error {
	switch t.client.Session().Check(roles...) {
	case apiclient.RedirectLogin:
		return fmt.Errorf("no hay sesión; usa: tablero login")
	case apiclient.RedirectDashboard:
		fmt.Fprintln(os.Stderr, "Tu rol no tiene acceso a esa pantalla; mostrando órdenes.")
		return t.orders(nil)
	}
	return fn()
}

// flushNotifications imprime las notificaciones que dejó la operación.
func (t *tablero) flushNotifications() {
	for _, n := range t.bus.Active() {
		fmt.Printf("[%s] %s\n", n.Type, n.Message)
	}
}

func (t *tablero) login(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "contraseña")
	remember := fs.Bool("remember", false, "mantener la sesión entre ejecuciones")
	if err := fs.Parse(args); err != nil {
		return err
	}
	out, err := t.client.Login(*email, *password, *remember)
	if err != nil {
		return err
	}
	fmt.Printf("Hola %s (%s).\n", out.User.Name, out.User.Role)
	return nil
}

var orderColumns = []table.Column[apiclient.Order]{
	{Key: "id", Label: "Orden", Render: func(o apiclient.Order) string {
		return strconv.FormatInt(o.ID, 10)
	}},
	{Key: "status", Label: "Status", Render: func(o apiclient.Order) string { return o.Status }},
	{Key: "customer", Label: "Cliente", Render: func(o apiclient.Order) string { return o.CustomerNumber }},
	{Key: "address", Label: "Dirección", Render: func(o apiclient.Order) string { return o.DeliveryAddress }},
	{Key: "images", Label: "Fotos", Render: func(o apiclient.Order) string {
		return strconv.Itoa(len(o.Images))
	}},
	{Key: "created", Label: "Alta", Render: func(o apiclient.Order) string {
		return table.Date(o.CreatedAt)
	}},
}

func (t *tablero) orders(args []string) error {
	fs := flag.NewFlagSet("orders", flag.ExitOnError)
	page := fs.Int("page", 1, "página")
	limit := fs.Int("limit", 10, "tamaño de página")
	status := fs.String("status", "", "filtrar por status")
	if err := fs.Parse(args); err != nil {
		return err
	}
	out, err := t.client.Orders().List(*page, *limit, *status)
	if err != nil {
		return err
	}
	fmt.Print(table.New(orderColumns...).Render(out.Data, false))
	fmt.Printf("Página %d de %d (%d órdenes)\n", *page, out.TotalPages, out.TotalItems)
	return nil
}

func (t *tablero) order(args []string) error {
	id, err := argID(args)
	if err != nil {
		return err
	}
	o, err := t.client.Orders().Get(id)
	if err != nil {
		return err
	}
	actions, err := t.client.Orders().Actions(id)
	if err != nil {
		return err
	}

	fmt.Printf("Orden #%d — %s\n", o.ID, o.Status)
	fmt.Printf("Cliente:   %s\n", o.CustomerNumber)
	fmt.Printf("Dirección: %s\n", o.DeliveryAddress)
	if o.Notes != "" {
		fmt.Printf("Notas:     %s\n", o.Notes)
	}
	for _, img := range o.Images {
		fmt.Printf("Foto (%s): %s\n", img.Description, img.ImageURL)
	}
	if actions.AdvanceVisible {
		fmt.Printf("Acción disponible: %s (tablero advance %d)\n", actions.ActionLabel, o.ID)
	}
	if actions.ImageActionVisible {
		fmt.Printf("Acción disponible: %s (tablero upload %d <archivo>)\n", actions.ImageLabel, o.ID)
	}
	return nil
}

func (t *tablero) orderAdd(args []string) error {
	fs := flag.NewFlagSet("order-add", flag.ExitOnError)
	customer := fs.String("customer", "", "número de cliente")
	address := fs.String("address", "", "dirección de entrega")
	notes := fs.String("notes", "", "notas")
	if err := fs.Parse(args); err != nil {
		return err
	}
	o, err := t.client.Orders().Create(apiclient.CreateOrderRequest{
		CustomerNumber: *customer, DeliveryAddress: *address, Notes: *notes,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Orden #%d creada en %s.\n", o.ID, o.Status)
	return nil
}

// advance consulta al servidor qué sigue y manda el status sucesor; la
// respuesta autoritativa del servidor es la que se muestra.
func (t *tablero) advance(args []string) error {
	id, err := argID(args)
	if err != nil {
		return err
	}
	o, err := t.client.Orders().Get(id)
	if err != nil {
		return err
	}
	next, err := workflow.Next(o.Status)
	if err != nil {
		return err
	}
	updated, err := t.client.Orders().Update(id, apiclient.UpdateOrderRequest{Status: next})
	if err != nil {
		return err
	}
	fmt.Printf("Orden #%d ahora está en %s.\n", updated.ID, updated.Status)
	return nil
}

func (t *tablero) upload(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("uso: tablero upload <id> <archivo>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("id inválido: %s", args[0])
	}
	f, err := os.Open(args[1])
	if err != nil {
		return err
	}
	defer f.Close()

	updated, err := t.client.Orders().UploadImage(id, args[1], f)
	if err != nil {
		return err
	}
	fmt.Printf("Orden #%d tiene %d foto(s).\n", updated.ID, len(updated.Images))
	return nil
}

func (t *tablero) pdf(args []string) error {
	fs := flag.NewFlagSet("pdf", flag.ExitOnError)
	out := fs.String("o", "", "archivo de salida")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := argID(fs.Args())
	if err != nil {
		return err
	}
	data, err := t.client.Orders().DeliveryNote(id)
	if err != nil {
		return err
	}
	path := *out
	if path == "" {
		path = fmt.Sprintf("orden-%d.pdf", id)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Println("Nota de entrega guardada en", path)
	return nil
}

var customerColumns = []table.Column[apiclient.Customer]{
	{Key: "number", Label: "N° Cliente", Render: func(c apiclient.Customer) string { return c.CustomerNumber }},
	{Key: "name", Label: "Nombre", Render: func(c apiclient.Customer) string { return c.Name }},
	{Key: "phone", Label: "Teléfono", Render: func(c apiclient.Customer) string { return c.Phone }},
	{Key: "address", Label: "Dirección", Render: func(c apiclient.Customer) string { return c.Address }},
	{Key: "created", Label: "Alta", Render: func(c apiclient.Customer) string {
		return table.Date(c.CreatedAt)
	}},
}

func (t *tablero) customers(args []string) error {
	fs := flag.NewFlagSet("customers", flag.ExitOnError)
	page := fs.Int("page", 1, "página")
	limit := fs.Int("limit", 10, "tamaño de página")
	if err := fs.Parse(args); err != nil {
		return err
	}
	out, err := t.client.Customers().List(*page, *limit)
	if err != nil {
		return err
	}
	fmt.Print(table.New(customerColumns...).Render(out.Data, false))
	fmt.Printf("Página %d de %d (%d clientes)\n", *page, out.TotalPages, out.TotalItems)
	return nil
}

func (t *tablero) customerAdd(args []string) error {
	fs := flag.NewFlagSet("customer-add", flag.ExitOnError)
	name := fs.String("name", "", "nombre")
	fiscal := fs.String("fiscal", "", "datos fiscales")
	address := fs.String("address", "", "dirección")
	phone := fs.String("phone", "", "teléfono de 10 dígitos")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := t.client.Customers().Create(apiclient.CreateCustomerRequest{
		Name: *name, FiscalData: *fiscal, Address: *address, Phone: *phone,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Cliente %s creado con número %s.\n", c.Name, c.CustomerNumber)
	return nil
}

func (t *tablero) search(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("uso: tablero search <término>")
	}
	options, err := t.client.Customers().Search(args[0])
	if err != nil {
		return err
	}
	if len(options) == 0 {
		fmt.Println(table.EmptyMessage)
		return nil
	}
	for _, opt := range options {
		fmt.Printf("%s  %s\n", opt.CustomerNumber, opt.Name)
	}
	return nil
}

var userColumns = []table.Column[apiclient.User]{
	{Key: "id", Label: "ID", Render: func(u apiclient.User) string {
		return strconv.FormatInt(u.ID, 10)
	}},
	{Key: "name", Label: "Nombre", Render: func(u apiclient.User) string { return u.Name }},
	{Key: "email", Label: "Email", Render: func(u apiclient.User) string { return u.Email }},
	{Key: "role", Label: "Rol", Render: func(u apiclient.User) string { return u.Role }},
}

func (t *tablero) users(args []string) error {
	fs := flag.NewFlagSet("users", flag.ExitOnError)
	page := fs.Int("page", 1, "página")
	limit := fs.Int("limit", 10, "tamaño de página")
	if err := fs.Parse(args); err != nil {
		return err
	}
	out, err := t.client.Users().List(*page, *limit)
	if err != nil {
		return err
	}
	fmt.Print(table.New(userColumns...).Render(out.Data, false))
	return nil
}

func (t *tablero) userAdd(args []string) error {
	fs := flag.NewFlagSet("user-add", flag.ExitOnError)
	name := fs.String("name", "", "nombre")
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "contraseña (mínimo 6)")
	role := fs.String("role", "", "admin | sales | purchasing | warehouse | route")
	if err := fs.Parse(args); err != nil {
		return err
	}
	u, err := t.client.Users().Create(apiclient.CreateUserRequest{
		Name: *name, Email: *email, Password: *password, Role: *role,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Usuario %s (%s) creado.\n", u.Name, u.Role)
	return nil
}

func (t *tablero) lookup(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("uso: tablero lookup <númeroCliente> <númeroOrden>")
	}
	o, err := t.client.Orders().Lookup(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("Orden #%d — %s\n", o.ID, o.Status)
	fmt.Printf("Entrega en: %s\n", o.DeliveryAddress)
	return nil
}

func argID(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("falta el id de la orden")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id inválido: %s", args[0])
	}
	return id, nil
}
