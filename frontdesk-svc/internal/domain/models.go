package domain

// Pay statuses used by the backend. Stored verbatim, never translated.
const (
	PayStatusUnpaid    = "未付款"
	PayStatusPaid      = "已付款"
	PayStatusCancelled = "取消"
)

type ItemType string

const (
	ItemDish ItemType = "dish"
	ItemSet  ItemType = "set"
)

// ItemRef identifies the dish or set meal an order line points at. A single
// ID field keyed by Type makes a line that references both, or neither,
// unrepresentable.
type ItemRef struct {
	Type ItemType `json:"itemType"`
	ID   int      `json:"itemId"`
}

type Dish struct {
	DNo    int     `json:"dNo"`
	DName  string  `json:"dName"`
	DDesc  string  `json:"dDesc,omitempty"`
	DPrice float64 `json:"dPrice"`
	DType  string  `json:"dType"`
}

type DishFields struct {
	DName  string  `json:"dName"`
	DDesc  string  `json:"dDesc"`
	DPrice float64 `json:"dPrice"`
	DType  string  `json:"dType"`
}

type SetMeal struct {
	SNo    int     `json:"sNo"`
	SName  string  `json:"sName"`
	SDesc  string  `json:"sDesc,omitempty"`
	SPrice float64 `json:"sPrice"`
}

type SetMealFields struct {
	SName  string  `json:"sName"`
	SDesc  string  `json:"sDesc"`
	SPrice float64 `json:"sPrice"`
}

type TableInfo struct {
	TID      int    `json:"tId"`
	Capacity int    `json:"capacity"`
	Location string `json:"location"`
}

type TableFields struct {
	Capacity int    `json:"capacity"`
	Location string `json:"location"`
}

type Customer struct {
	CID    int    `json:"cId"`
	CName  string `json:"cName"`
	CPhone string `json:"cPhone"`
}

type CustomerFields struct {
	CName  string `json:"cName"`
	CPhone string `json:"cPhone"`
}

type OrderDetail struct {
	OdID     int     `json:"odId"`
	Quantity int     `json:"quantity"`
	SubTotal float64 `json:"subTotal"`
	ItemRef
}

type OrderInfo struct {
	OID        int           `json:"oId"`
	ODateTime  string        `json:"oDateTime"`
	TotalPrice float64       `json:"totalPrice"`
	PayStatus  string        `json:"payStatus"`
	CustomerID int           `json:"customerId,omitempty"`
	TableID    int           `json:"tableId,omitempty"`
	Details    []OrderDetail `json:"orderDetailses"`
}

// DetailDraft is an order line as edited in the admin form or assembled from
// the cart, before the backend has assigned it an odId.
type DetailDraft struct {
	Item     ItemRef `json:"item"`
	Quantity int     `json:"quantity"`
	SubTotal float64 `json:"subTotal"`
}

// OrderDraft carries everything the backend needs to create or replace an
// order. Relation IDs stay bare here; they become links only at the wire
// boundary.
type OrderDraft struct {
	ODateTime  string        `json:"oDateTime"`
	TotalPrice float64       `json:"totalPrice"`
	PayStatus  string        `json:"payStatus"`
	CustomerID int           `json:"customerId"`
	TableID    int           `json:"tableId"`
	Details    []DetailDraft `json:"orderDetailses"`
}

// DetailFields is the payload for the standalone order-detail endpoints,
// which additionally carry the owning order.
type DetailFields struct {
	Item     ItemRef `json:"item"`
	Quantity int     `json:"quantity"`
	SubTotal float64 `json:"subTotal"`
	OrderID  int     `json:"orderId"`
}

// Menu is the customer-facing catalog snapshot.
type Menu struct {
	Dishes   []Dish    `json:"dishes"`
	SetMeals []SetMeal `json:"setMeals"`
}

// Lookup finds an item's display name and current unit price in the catalog.
// ok is false when the item is not (or no longer) on the menu.
func (m *Menu) Lookup(item ItemRef) (name string, price float64, ok bool) {
	switch item.Type {
	case ItemDish:
		for _, d := range m.Dishes {
			if d.DNo == item.ID {
				return d.DName, d.DPrice, true
			}
		}
	case ItemSet:
		for _, s := range m.SetMeals {
			if s.SNo == item.ID {
				return s.SName, s.SPrice, true
			}
		}
	}
	return "", 0, false
}

// PriceOf looks up the current unit price of an item in the catalog.
func (m *Menu) PriceOf(item ItemRef) (float64, bool) {
	_, price, ok := m.Lookup(item)
	return price, ok
}
