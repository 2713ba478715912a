package storage

import "tableside/frontdesk-svc/internal/domain"

// Raw shapes of the hypermedia backend. Collections arrive wrapped in an
// _embedded envelope with pagination metadata; relations arrive as _links
// entries instead of bare foreign keys. Nothing outside this package sees
// these types.

type link struct {
	Href string `json:"href"`
}

type itemLinks struct {
	Self      *link `json:"self"`
	Customer  *link `json:"customer"`
	TableInfo *link `json:"tableInfo"`
	Dish      *link `json:"dish"`
	SetMeal   *link `json:"setMeal"`
	OrderInfo *link `json:"orderInfo"`
}

type pageMeta struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// selfLinked is the minimal shape the link resolver needs from an
// association-resource fetch: the representation's own identity.
type selfLinked struct {
	Links struct {
		Self *link `json:"self"`
	} `json:"_links"`
}

type rawDish struct {
	DNo    int       `json:"dNo"`
	DName  string    `json:"dName"`
	DDesc  string    `json:"dDesc"`
	DPrice float64   `json:"dPrice"`
	DType  string    `json:"dType"`
	Links  itemLinks `json:"_links"`
}

func (r rawDish) flatten() domain.Dish {
	return domain.Dish{DNo: r.DNo, DName: r.DName, DDesc: r.DDesc, DPrice: r.DPrice, DType: r.DType}
}

type dishCollection struct {
	Embedded struct {
		Dishes []rawDish `json:"dishes"`
	} `json:"_embedded"`
	Page pageMeta `json:"page"`
}

type rawSetMeal struct {
	SNo    int       `json:"sNo"`
	SName  string    `json:"sName"`
	SDesc  string    `json:"sDesc"`
	SPrice float64   `json:"sPrice"`
	Links  itemLinks `json:"_links"`
}

func (r rawSetMeal) flatten() domain.SetMeal {
	return domain.SetMeal{SNo: r.SNo, SName: r.SName, SDesc: r.SDesc, SPrice: r.SPrice}
}

type setMealCollection struct {
	Embedded struct {
		SetMeals []rawSetMeal `json:"setMeals"`
	} `json:"_embedded"`
	Page pageMeta `json:"page"`
}

type rawTable struct {
	TID      int       `json:"tId"`
	Capacity int       `json:"capacity"`
	Location string    `json:"location"`
	Links    itemLinks `json:"_links"`
}

func (r rawTable) flatten() domain.TableInfo {
	return domain.TableInfo{TID: r.TID, Capacity: r.Capacity, Location: r.Location}
}

type tableCollection struct {
	Embedded struct {
		TableInfoes []rawTable `json:"tableInfoes"`
	} `json:"_embedded"`
	Page pageMeta `json:"page"`
}

type rawCustomer struct {
	CID    int       `json:"cId"`
	CName  string    `json:"cName"`
	CPhone string    `json:"cPhone"`
	Links  itemLinks `json:"_links"`
}

func (r rawCustomer) flatten() domain.Customer {
	return domain.Customer{CID: r.CID, CName: r.CName, CPhone: r.CPhone}
}

type customerCollection struct {
	Embedded struct {
		Customers []rawCustomer `json:"customers"`
	} `json:"_embedded"`
	Page pageMeta `json:"page"`
}

type rawOrderDetail struct {
	OdID     int       `json:"odId"`
	Quantity int       `json:"quantity"`
	SubTotal float64   `json:"subTotal"`
	Links    itemLinks `json:"_links"`
}

type orderDetailCollection struct {
	Embedded struct {
		OrderDetails []rawOrderDetail `json:"orderDetails"`
	} `json:"_embedded"`
	Page pageMeta `json:"page"`
}

type rawOrderInfo struct {
	OID        int       `json:"oId"`
	ODateTime  string    `json:"oDateTime"`
	TotalPrice float64   `json:"totalPrice"`
	PayStatus  string    `json:"payStatus"`
	Links      itemLinks `json:"_links"`
	Embedded   struct {
		OrderDetailses []rawOrderDetail `json:"orderDetailses"`
	} `json:"_embedded"`
}

type orderCollection struct {
	Embedded struct {
		OrderInfoes []rawOrderInfo `json:"orderInfoes"`
	} `json:"_embedded"`
	Page pageMeta `json:"page"`
}

// Outbound payloads. Editable fields only, never backend-assigned keys;
// relations go out as link strings.

type detailPayload struct {
	Dish     *string `json:"dish"`
	SetMeal  *string `json:"setMeal"`
	Quantity int     `json:"quantity"`
	SubTotal float64 `json:"subTotal"`
}

type orderPayload struct {
	ODateTime      string          `json:"oDateTime"`
	TotalPrice     float64         `json:"totalPrice"`
	PayStatus      string          `json:"payStatus"`
	Customer       string          `json:"customer"`
	TableInfo      string          `json:"tableInfo"`
	OrderDetailses []detailPayload `json:"orderDetailses"`
}

type standaloneDetailPayload struct {
	Quantity  int     `json:"quantity"`
	SubTotal  float64 `json:"subTotal"`
	OrderInfo string  `json:"orderInfo"`
	Dish      *string `json:"dish"`
	SetMeal   *string `json:"setMeal"`
}
