package entities

type IntentKind string

const (
	IntentPlaceOrder  IntentKind = "place_order"
	IntentProductInfo IntentKind = "product_info"
	IntentGeneral     IntentKind = "general"
)

// Intent - структурированный запрос, извлеченный языковой моделью из сообщения.
type Intent struct {
	Kind  IntentKind
	Items []IntentItem
}

type IntentItem struct {
	SKU         string
	BaseProduct string
	Attributes  map[string]string
	Quantity    int
}

type ChatReply struct {
	Message            string
	Intent             IntentKind
	Order              *Order
	NeedsClarification bool
}
