package handler

import (
	"time"

	"gazexpress/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Money is always written with two decimals, as a string.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// CoordinatesResponse is a GPS point on the wire.
type CoordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func presentCoordinates(c *entity.Coordinates) *CoordinatesResponse {
	if c == nil {
		return nil
	}

	return &CoordinatesResponse{Latitude: c.Latitude, Longitude: c.Longitude}
}

// AccountResponse is an account as seen by the mobile clients.
type AccountResponse struct {
	ID         uuid.UUID            `json:"id"`
	Email      string               `json:"email"`
	LastName   string               `json:"nom"`
	FirstName  string               `json:"prenom"`
	Phone      string               `json:"telephone"`
	Role       entity.Role          `json:"role"`
	Address    string               `json:"adresse"`
	Location   *CoordinatesResponse `json:"coordonnees_gps"`
	IsActive   bool                 `json:"is_active"`
	IsApproved bool                 `json:"is_approved"`
	CreatedAt  time.Time            `json:"date_creation"`
}

func presentAccount(a *entity.Account) *AccountResponse {
	if a == nil {
		return nil
	}

	return &AccountResponse{
		ID:         a.ID,
		Email:      a.Email,
		LastName:   a.LastName,
		FirstName:  a.FirstName,
		Phone:      a.Phone,
		Role:       a.Role,
		Address:    a.Address,
		Location:   presentCoordinates(a.Location),
		IsActive:   a.IsActive,
		IsApproved: a.IsApproved,
		CreatedAt:  a.CreatedAt,
	}
}

func presentAccounts(accounts []*entity.Account) []*AccountResponse {
	out := make([]*AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, presentAccount(a))
	}

	return out
}

// ZoneResponse is a delivery zone.
type ZoneResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"nom"`
	DeliveryFee    string    `json:"frais_livraison"`
	EstimatedDelay string    `json:"delai_estime"`
	IsActive       bool      `json:"is_active"`
}

func presentZone(z *entity.Zone) *ZoneResponse {
	if z == nil {
		return nil
	}

	return &ZoneResponse{
		ID:             z.ID,
		Name:           z.Name,
		DeliveryFee:    money(z.DeliveryFee),
		EstimatedDelay: z.EstimatedDelay,
		IsActive:       z.IsActive,
	}
}

func presentZones(zones []*entity.Zone) []*ZoneResponse {
	out := make([]*ZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, presentZone(z))
	}

	return out
}

// StationResponse is a station profile.
type StationResponse struct {
	ID           uuid.UUID            `json:"id"`
	UserID       uuid.UUID            `json:"user"`
	Name         string               `json:"nom"`
	Address      string               `json:"adresse"`
	Phone        string               `json:"telephone"`
	Email        string               `json:"email"`
	Location     *CoordinatesResponse `json:"coordonnees_gps"`
	OpeningHours string               `json:"horaires"`
	IsActive     bool                 `json:"is_active"`
	IsApproved   bool                 `json:"is_approved"`
}

func presentStation(s *entity.StationProfile) *StationResponse {
	if s == nil {
		return nil
	}

	return &StationResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		Name:         s.Name,
		Address:      s.Address,
		Phone:        s.Phone,
		Email:        s.Email,
		Location:     presentCoordinates(s.Location),
		OpeningHours: s.OpeningHours,
		IsActive:     s.IsActive,
		IsApproved:   s.IsApproved,
	}
}

func presentStations(stations []*entity.StationProfile) []*StationResponse {
	out := make([]*StationResponse, 0, len(stations))
	for _, s := range stations {
		out = append(out, presentStation(s))
	}

	return out
}

// CourierResponse is a courier profile with its account and zone inlined.
type CourierResponse struct {
	ID             uuid.UUID        `json:"id"`
	User           *AccountResponse `json:"user"`
	Vehicle        string           `json:"vehicule"`
	Plate          string           `json:"immatriculation"`
	Zone           *ZoneResponse    `json:"zone"`
	IsAvailable    bool             `json:"is_disponible"`
	IsApproved     bool             `json:"is_approved"`
	AverageRating  string           `json:"note_moyenne"`
	DeliveredCount int              `json:"nombre_livraisons"`
}

func presentCourier(c *entity.CourierProfile) *CourierResponse {
	if c == nil {
		return nil
	}

	return &CourierResponse{
		ID:             c.ID,
		User:           presentAccount(c.Account),
		Vehicle:        c.Vehicle,
		Plate:          c.Plate,
		Zone:           presentZone(c.Zone),
		IsAvailable:    c.IsAvailable,
		IsApproved:     c.IsApproved,
		AverageRating:  money(c.AverageRating),
		DeliveredCount: c.DeliveredCount,
	}
}

func presentCouriers(couriers []*entity.CourierProfile) []*CourierResponse {
	out := make([]*CourierResponse, 0, len(couriers))
	for _, c := range couriers {
		out = append(out, presentCourier(c))
	}

	return out
}

// ProductResponse is a catalog bottle with its station name and position.
type ProductResponse struct {
	ID              uuid.UUID            `json:"id"`
	TradeName       string               `json:"nom_commercial"`
	Type            entity.ProductType   `json:"type"`
	Brand           string               `json:"marque"`
	Price           string               `json:"prix"`
	Stock           int                  `json:"stock"`
	Description     string               `json:"description"`
	ProductCode     string               `json:"code_produit"`
	StationID       uuid.UUID            `json:"station"`
	StationName     string               `json:"station_nom"`
	StationLocation *CoordinatesResponse `json:"station_coordonnees"`
	Available       bool                 `json:"disponible"`
}

func presentProduct(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}

	out := &ProductResponse{
		ID:          p.ID,
		TradeName:   p.TradeName,
		Type:        p.Type,
		Brand:       p.Brand,
		Price:       money(p.Price),
		Stock:       p.Stock,
		Description: p.Description,
		ProductCode: p.ProductCode,
		StationID:   p.StationID,
		Available:   p.Available,
	}
	if p.Station != nil {
		out.StationName = p.Station.Name
		out.StationLocation = presentCoordinates(p.Station.Location)
	}

	return out
}

func presentProducts(products []*entity.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, presentProduct(p))
	}

	return out
}

// OrderResponse is an order with its parties inlined.
type OrderResponse struct {
	ID               uuid.UUID            `json:"id"`
	Client           *AccountResponse     `json:"client"`
	Product          *ProductResponse     `json:"bouteille"`
	StationID        uuid.UUID            `json:"station_id"`
	Station          *StationResponse     `json:"station"`
	Courier          *CourierResponse     `json:"livreur"`
	Quantity         int                  `json:"quantite"`
	LineTotal        string               `json:"prix_total"`
	DeliveryFee      string               `json:"frais_livraison"`
	GrandTotal       string               `json:"montant_total"`
	DeliveryAddress  string               `json:"adresse_livraison"`
	DeliveryLocation *CoordinatesResponse `json:"coordonnees_livraison"`
	Status           entity.OrderStatus   `json:"statut"`
	Notes            string               `json:"notes"`
	CreatedAt        time.Time            `json:"date_commande"`
	DeliveredAt      *time.Time           `json:"date_livraison"`
}

func presentOrder(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}

	out := &OrderResponse{
		ID:               o.ID,
		Client:           presentAccount(o.Client),
		Product:          presentProduct(o.Product),
		StationID:        o.StationID,
		Courier:          presentCourier(o.Courier),
		Quantity:         o.Quantity,
		LineTotal:        money(o.LineTotal),
		DeliveryFee:      money(o.DeliveryFee),
		GrandTotal:       money(o.GrandTotal),
		DeliveryAddress:  o.DeliveryAddress,
		DeliveryLocation: presentCoordinates(o.DeliveryLocation),
		Status:           o.Status,
		Notes:            o.Notes,
		CreatedAt:        o.CreatedAt,
		DeliveredAt:      o.DeliveredAt,
	}
	if o.Product != nil {
		out.Station = presentStation(o.Product.Station)
	}

	return out
}

func presentOrders(orders []*entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, presentOrder(o))
	}

	return out
}

// PaymentResponse is a payment ledger entry.
type PaymentResponse struct {
	ID        uuid.UUID            `json:"id"`
	OrderID   uuid.UUID            `json:"commande"`
	Amount    string               `json:"montant"`
	Method    entity.PaymentMethod `json:"methode"`
	Status    entity.PaymentStatus `json:"statut"`
	Reference string               `json:"reference"`
	CreatedAt time.Time            `json:"date_paiement"`
}

func presentPayment(p *entity.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}

	return &PaymentResponse{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Amount:    money(p.Amount),
		Method:    p.Method,
		Status:    p.Status,
		Reference: p.Reference,
		CreatedAt: p.CreatedAt,
	}
}

func presentPayments(payments []*entity.Payment) []*PaymentResponse {
	out := make([]*PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, presentPayment(p))
	}

	return out
}

// DashboardResponse holds the admin reporting aggregates.
type DashboardResponse struct {
	TotalClients  int64  `json:"total_clients"`
	TotalCouriers int64  `json:"total_livreurs"`
	TotalStations int64  `json:"total_stations"`
	TotalOrders   int64  `json:"total_commandes"`
	Revenue       string `json:"revenus_totaux"`
	OrdersToday   int64  `json:"commandes_jour"`
	OrdersWeek    int64  `json:"commandes_semaine"`
	OrdersMonth   int64  `json:"commandes_mois"`
}

func presentDashboard(s *entity.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		TotalClients:  s.TotalClients,
		TotalCouriers: s.TotalCouriers,
		TotalStations: s.TotalStations,
		TotalOrders:   s.TotalOrders,
		Revenue:       money(s.Revenue),
		OrdersToday:   s.OrdersToday,
		OrdersWeek:    s.OrdersWeek,
		OrdersMonth:   s.OrdersMonth,
	}
}

// ApprovalRequest is the body of every approve endpoint.
type ApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// approvalMessage builds the confirmation shown after an approval decision.
// Feminine subjects take the agreed participle.
func approvalMessage(subject string, feminine, approved bool) string {
	verb := "refusé"
	if approved {
		verb = "approuvé"
	}
	if feminine {
		verb += "e"
	}

	return subject + " " + verb + " avec succès."
}

// LocationRequest is the optional GPS pair accepted on writes.
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

func (r LocationRequest) coordinates() *entity.Coordinates {
	return entity.NewCoordinates(r.Latitude, r.Longitude)
}

// pathID parses the :id route parameter. A malformed ID cannot match any
// resource, so it is reported as not found.
func pathID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))

	return id, err == nil
}
