package document

import "time"

// Order statuses. Only completed orders are counted in the analytics
// revenue/order counters.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

const (
	DeliveryMethodDelivery = "delivery"
	DeliveryMethodPickup   = "pickup"
)

// Document is the single JSON object holding all store state. It is always
// read and written as a whole; partial updates go through the documents manager.
type Document struct {
	Settings      Settings  `json:"settings"`
	User          User      `json:"user"`
	Products      []Product `json:"products"`
	Orders        []Order   `json:"orders"`
	Analytics     Analytics `json:"analytics"`
	NextProductID int       `json:"nextProductId"`
}

type Settings struct {
	StoreName       string  `json:"storeName"`
	HeroTitle       string  `json:"heroTitle"`
	HeroDescription string  `json:"heroDescription"`
	Currency        string  `json:"currency"`
	Language        string  `json:"language"`
	Active          bool    `json:"active"`
	LogoURL         string  `json:"logoUrl"`
	FaviconURL      string  `json:"faviconUrl"`
	Theme           Theme   `json:"theme"`
	Contact         Contact `json:"contact"`
	Social          Social  `json:"social"`
}

type Theme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

type Contact struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Hours    string `json:"hours"`
	Days     string `json:"days"`
}

type Social struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	TikTok    string `json:"tiktok"`
}

// User is the singleton admin profile. The password hash never leaves the
// backend; handler DTOs expose only the public fields.
type User struct {
	Name              string     `json:"name"`
	Role              string     `json:"role"`
	Avatar            string     `json:"avatar"`
	PasswordHash      []byte     `json:"passwordHash,omitempty"`
	PasswordChangedAt *time.Time `json:"passwordChangedAt,omitempty"`
}

type Product struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	Quantity          int       `json:"quantity"`
	Category          string    `json:"category"`
	Active            bool      `json:"active"`
	DeliveryAvailable bool      `json:"deliveryAvailable"`
	Images            []string  `json:"images"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type Order struct {
	ID             string      `json:"id"`
	CustomerName   string      `json:"customerName"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address"`
	Note           string      `json:"note"`
	Items          []OrderItem `json:"items"`
	DeliveryMethod string      `json:"deliveryMethod"`
	Total          float64     `json:"total"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
	CompletedAt    *time.Time  `json:"completedAt,omitempty"`
}

type OrderItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Analytics struct {
	Visitors    int           `json:"visitors"`
	OrdersCount int           `json:"ordersCount"`
	Revenue     float64       `json:"revenue"`
	Monthly     []MonthlyStat `json:"monthly"`
}

// MonthlyStat buckets completed orders by the month they were completed in.
type MonthlyStat struct {
	Month   string  `json:"month"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// Clone returns a deep copy. Stores and caches hand out clones so a caller
// mutating one document can never corrupt another reader's view.
func (d *Document) Clone() *Document {
	out := *d

	out.User.PasswordHash = append([]byte(nil), d.User.PasswordHash...)
	if d.User.PasswordChangedAt != nil {
		changedAt := *d.User.PasswordChangedAt
		out.User.PasswordChangedAt = &changedAt
	}

	if d.Products != nil {
		out.Products = make([]Product, len(d.Products))
		copy(out.Products, d.Products)
		for i := range out.Products {
			if d.Products[i].Images != nil {
				out.Products[i].Images = append([]string(nil), d.Products[i].Images...)
			}
		}
	}

	if d.Orders != nil {
		out.Orders = make([]Order, len(d.Orders))
		copy(out.Orders, d.Orders)
		for i := range out.Orders {
			if d.Orders[i].Items != nil {
				out.Orders[i].Items = append([]OrderItem(nil), d.Orders[i].Items...)
			}
			if d.Orders[i].CompletedAt != nil {
				completedAt := *d.Orders[i].CompletedAt
				out.Orders[i].CompletedAt = &completedAt
			}
		}
	}

	if d.Analytics.Monthly != nil {
		out.Analytics.Monthly = append([]MonthlyStat(nil), d.Analytics.Monthly...)
	}

	return &out
}

// FindProduct returns the index of the product with the given id, or -1.
func (d *Document) FindProduct(id int) int {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return i
		}
	}
	return -1
}

// FindOrder returns the index of the order with the given id, or -1.
func (d *Document) FindOrder(id string) int {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return i
		}
	}
	return -1
}

// CountOrder applies the completed-only counting policy: it adjusts the
// analytics counters by the given sign for an order entering (+1) or leaving
// (-1) the counted state. at is the bucket timestamp for monthly stats.
func (a *Analytics) CountOrder(total float64, sign int, at time.Time) {
	a.OrdersCount += sign
	a.Revenue += float64(sign) * total

	month := at.UTC().Format("2006-01")
	for i := range a.Monthly {
		if a.Monthly[i].Month == month {
			a.Monthly[i].Orders += sign
			a.Monthly[i].Revenue += float64(sign) * total
			return
		}
	}

	if sign > 0 {
		a.Monthly = append(a.Monthly, MonthlyStat{Month: month, Orders: sign, Revenue: float64(sign) * total})
	}
}
