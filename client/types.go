package client

import "time"

// ------------------------------
// Core resource types and payloads
// ------------------------------

// Product represents a catalog product. Zero-valued optional fields are
// omitted from request payloads so partial updates only touch the fields
// the caller set.
type Product struct {
	ID               int           `json:"id,omitempty"`
	Name             string        `json:"name,omitempty"`
	Slug             string        `json:"slug,omitempty"`
	Type             string        `json:"type,omitempty"`
	Status           string        `json:"status,omitempty"`
	Description      string        `json:"description,omitempty"`
	ShortDescription string        `json:"short_description,omitempty"`
	SKU              string        `json:"sku,omitempty"`
	Price            string        `json:"price,omitempty"`
	RegularPrice     string        `json:"regular_price,omitempty"`
	SalePrice        string        `json:"sale_price,omitempty"`
	OnSale           bool          `json:"on_sale,omitempty"`
	StockQuantity    *int          `json:"stock_quantity,omitempty"`
	StockStatus      string        `json:"stock_status,omitempty"`
	Categories       []CategoryRef `json:"categories,omitempty"`
	Tags             []TagRef      `json:"tags,omitempty"`
	DateCreated      *time.Time    `json:"date_created,omitempty"`
	DateModified     *time.Time    `json:"date_modified,omitempty"`
}

// CategoryRef links a product to a category.
type CategoryRef struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// TagRef links a product to a tag.
type TagRef struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// Variation is a purchasable variant of a variable product.
type Variation struct {
	ID            int        `json:"id,omitempty"`
	SKU           string     `json:"sku,omitempty"`
	Price         string     `json:"price,omitempty"`
	RegularPrice  string     `json:"regular_price,omitempty"`
	SalePrice     string     `json:"sale_price,omitempty"`
	StockQuantity *int       `json:"stock_quantity,omitempty"`
	StockStatus   string     `json:"stock_status,omitempty"`
	DateCreated   *time.Time `json:"date_created,omitempty"`
}

// Order represents a customer order.
type Order struct {
	ID            int        `json:"id,omitempty"`
	Number        string     `json:"number,omitempty"`
	Status        string     `json:"status,omitempty"`
	Currency      string     `json:"currency,omitempty"`
	Total         string     `json:"total,omitempty"`
	CustomerID    int        `json:"customer_id,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	Billing       *Address   `json:"billing,omitempty"`
	Shipping      *Address   `json:"shipping,omitempty"`
	LineItems     []LineItem `json:"line_items,omitempty"`
	DateCreated   *time.Time `json:"date_created,omitempty"`
	DatePaid      *time.Time `json:"date_paid,omitempty"`
}

// LineItem is one product line within an order.
type LineItem struct {
	ID        int    `json:"id,omitempty"`
	ProductID int    `json:"product_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
	Subtotal  string `json:"subtotal,omitempty"`
	Total     string `json:"total,omitempty"`
}

// Refund is a full or partial refund attached to an order.
type Refund struct {
	ID          int        `json:"id,omitempty"`
	Amount      string     `json:"amount,omitempty"`
	Reason      string     `json:"reason,omitempty"`
	DateCreated *time.Time `json:"date_created,omitempty"`
}

// Address is a billing or shipping address.
type Address struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address_1,omitempty"`
	Address2  string `json:"address_2,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Postcode  string `json:"postcode,omitempty"`
	Country   string `json:"country,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Customer represents a store customer account.
type Customer struct {
	ID          int        `json:"id,omitempty"`
	Email       string     `json:"email,omitempty"`
	FirstName   string     `json:"first_name,omitempty"`
	LastName    string     `json:"last_name,omitempty"`
	Username    string     `json:"username,omitempty"`
	Billing     *Address   `json:"billing,omitempty"`
	Shipping    *Address   `json:"shipping,omitempty"`
	IsPaying    bool       `json:"is_paying_customer,omitempty"`
	DateCreated *time.Time `json:"date_created,omitempty"`
}

// Coupon represents a discount coupon.
type Coupon struct {
	ID           int        `json:"id,omitempty"`
	Code         string     `json:"code,omitempty"`
	Amount       string     `json:"amount,omitempty"`
	DiscountType string     `json:"discount_type,omitempty"`
	Description  string     `json:"description,omitempty"`
	UsageCount   int        `json:"usage_count,omitempty"`
	UsageLimit   *int       `json:"usage_limit,omitempty"`
	DateExpires  *time.Time `json:"date_expires,omitempty"`
}

// Webhook represents a registered event delivery target.
type Webhook struct {
	ID          int        `json:"id,omitempty"`
	Name        string     `json:"name,omitempty"`
	Status      string     `json:"status,omitempty"`
	Topic       string     `json:"topic,omitempty"`
	DeliveryURL string     `json:"delivery_url,omitempty"`
	Secret      string     `json:"secret,omitempty"`
	DateCreated *time.Time `json:"date_created,omitempty"`
}

// batchRequest is the wire shape of a batch endpoint call. The API bounds
// each list to maxBatchSize entries per request.
type batchRequest[T any] struct {
	Create []T   `json:"create,omitempty"`
	Update []T   `json:"update,omitempty"`
	Delete []int `json:"delete,omitempty"`
}

// batchResponse mirrors batchRequest for the server's reply.
type batchResponse[T any] struct {
	Create []T `json:"create,omitempty"`
	Update []T `json:"update,omitempty"`
	Delete []T `json:"delete,omitempty"`
}
