package service

import (
	"errors"
	"fmt"
	"time"

	"tableside/frontdesk-svc/internal/domain"
)

var (
	ErrCustomerRequired = errors.New("a customer must be selected")
	ErrTableRequired    = errors.New("a table must be selected")
	ErrNoDetails        = errors.New("an order needs at least one detail line")
)

// OrderForm models the staff order editor: a header plus detail lines whose
// subtotals are recomputed from the current catalog whenever a line's type,
// item, or quantity changes. The backend never recomputes these figures.
type OrderForm struct {
	ODateTime  string
	PayStatus  string
	CustomerID int
	TableID    int
	Details    []domain.DetailDraft

	menu *domain.Menu
}

func NewOrderForm(menu *domain.Menu) *OrderForm {
	return &OrderForm{
		ODateTime: domain.FormatOrderTime(time.Now()),
		PayStatus: domain.PayStatusUnpaid,
		menu:      menu,
	}
}

// FormFromOrder preloads the editor with an existing order for edit mode.
func FormFromOrder(order *domain.OrderInfo, menu *domain.Menu) *OrderForm {
	form := &OrderForm{
		ODateTime:  order.ODateTime,
		PayStatus:  order.PayStatus,
		CustomerID: order.CustomerID,
		TableID:    order.TableID,
		Details:    make([]domain.DetailDraft, 0, len(order.Details)),
		menu:       menu,
	}
	for _, d := range order.Details {
		form.Details = append(form.Details, domain.DetailDraft{
			Item:     d.ItemRef,
			Quantity: d.Quantity,
			SubTotal: d.SubTotal,
		})
	}
	return form
}

// FormFromDraft rebuilds a form from a submitted flat draft, recomputing
// every line's subtotal from current catalog prices.
func FormFromDraft(draft domain.OrderDraft, menu *domain.Menu) *OrderForm {
	form := &OrderForm{
		ODateTime:  draft.ODateTime,
		PayStatus:  draft.PayStatus,
		CustomerID: draft.CustomerID,
		TableID:    draft.TableID,
		Details:    append([]domain.DetailDraft(nil), draft.Details...),
		menu:       menu,
	}
	if form.ODateTime == "" {
		form.ODateTime = domain.FormatOrderTime(time.Now())
	}
	if form.PayStatus == "" {
		form.PayStatus = domain.PayStatusUnpaid
	}
	for i := range form.Details {
		form.recompute(i)
	}
	return form
}

// AddDetail appends an empty line: dish type, no item chosen yet.
func (f *OrderForm) AddDetail() {
	f.Details = append(f.Details, domain.DetailDraft{
		Item:     domain.ItemRef{Type: domain.ItemDish},
		Quantity: 1,
	})
}

func (f *OrderForm) RemoveDetail(idx int) error {
	if idx < 0 || idx >= len(f.Details) {
		return fmt.Errorf("no detail line %d", idx)
	}
	f.Details = append(f.Details[:idx], f.Details[idx+1:]...)
	return nil
}

// SetDetailType switches a line between dish and set meal. The previous item
// selection no longer applies, so the line resets and must be re-chosen.
func (f *OrderForm) SetDetailType(idx int, t domain.ItemType) error {
	if idx < 0 || idx >= len(f.Details) {
		return fmt.Errorf("no detail line %d", idx)
	}
	f.Details[idx].Item = domain.ItemRef{Type: t}
	f.recompute(idx)
	return nil
}

func (f *OrderForm) SetDetailItem(idx, itemID int) error {
	if idx < 0 || idx >= len(f.Details) {
		return fmt.Errorf("no detail line %d", idx)
	}
	f.Details[idx].Item.ID = itemID
	f.recompute(idx)
	return nil
}

func (f *OrderForm) SetDetailQuantity(idx, quantity int) error {
	if idx < 0 || idx >= len(f.Details) {
		return fmt.Errorf("no detail line %d", idx)
	}
	f.Details[idx].Quantity = quantity
	f.recompute(idx)
	return nil
}

// recompute derives a line's subtotal from the catalog's current unit price.
// An unselected or unknown item prices at zero.
func (f *OrderForm) recompute(idx int) {
	d := &f.Details[idx]
	price := 0.0
	if f.menu != nil {
		if p, ok := f.menu.PriceOf(d.Item); ok {
			price = p
		}
	}
	quantity := d.Quantity
	if quantity < 0 {
		quantity = 0
	}
	d.SubTotal = price * float64(quantity)
}

// TotalPrice is the sum of all current line subtotals. It is persisted as
// sent; the backend does not enforce consistency with the details.
func (f *OrderForm) TotalPrice() float64 {
	var sum float64
	for _, d := range f.Details {
		sum += d.SubTotal
	}
	return sum
}

func (f *OrderForm) Validate() error {
	if f.CustomerID <= 0 {
		return ErrCustomerRequired
	}
	if f.TableID <= 0 {
		return ErrTableRequired
	}
	if len(f.Details) == 0 {
		return ErrNoDetails
	}
	for i, d := range f.Details {
		if d.Item.ID <= 0 {
			return fmt.Errorf("detail line %d has no item selected", i)
		}
		if d.Quantity <= 0 {
			return fmt.Errorf("detail line %d needs a positive quantity", i)
		}
	}
	return nil
}

// Draft validates the form and produces the payload for the order accessor.
func (f *OrderForm) Draft() (domain.OrderDraft, error) {
	if err := f.Validate(); err != nil {
		return domain.OrderDraft{}, err
	}
	return domain.OrderDraft{
		ODateTime:  f.ODateTime,
		TotalPrice: f.TotalPrice(),
		PayStatus:  f.PayStatus,
		CustomerID: f.CustomerID,
		TableID:    f.TableID,
		Details:    append([]domain.DetailDraft(nil), f.Details...),
	}, nil
}
