package api

// Amounts are decimal strings with two fraction digits, e.g. "12.50".

// Item is a bill line as sent over the wire.
type Item struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Multiplier int32  `json:"multiplier"`
}

// Person is a participant and the item IDs they selected.
type Person struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	SelectedItems []string `json:"selectedItems"`
	IsPaid        bool     `json:"isPaid"`
}

// Group is a whole bill: items, people, tip and split settings.
type Group struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	Date      string    `json:"date"`
	Items     []*Item   `json:"items"`
	People    []*Person `json:"people"`
	TipValue  string    `json:"tipValue"`
	TipMode   string    `json:"tipMode"`
	SplitMode string    `json:"splitMode"`
	Headcount int32     `json:"headcount"`
	CreatedAt int64     `json:"createdAt"`
}

// GroupSummary is one row of the group list, with its computed total.
type GroupSummary struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Date        string `json:"date"`
	Total       string `json:"total"`
	ItemCount   int32  `json:"itemCount"`
	PeopleCount int32  `json:"peopleCount"`
}

// Allocation is the computed split of a group.
type Allocation struct {
	Subtotal      string            `json:"subtotal"`
	TipAmount     string            `json:"tipAmount"`
	Total         string            `json:"total"`
	PerPerson     map[string]string `json:"perPerson"`
	TotalAssigned string            `json:"totalAssigned"`
	Balanced      bool              `json:"balanced"`
	TipUnassigned bool              `json:"tipUnassigned"`
	// EqualShare is empty unless the group is in equal mode with a headcount.
	EqualShare string `json:"equalShare,omitempty"`
}

// GroupUpdate is returned by every call that changes a group.
type GroupUpdate struct {
	Group      *Group      `json:"group"`
	Allocation *Allocation `json:"allocation"`
}

// ScannedItem is a receipt line candidate awaiting review.
type ScannedItem struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Selected bool   `json:"selected"`
}

// Currency is an entry of the currency table.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// GroupService

// CreateGroupRequest creates an empty group dated today.
type CreateGroupRequest struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// CreateGroupResponse carries the new group.
type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

// GetGroupRequest names the group to load.
type GetGroupRequest struct {
	GroupId string `json:"groupId"`
}

// GetGroupResponse carries a group and its allocation.
type GetGroupResponse struct {
	Group      *Group      `json:"group"`
	Allocation *Allocation `json:"allocation"`
}

// ListGroupsRequest lists every stored group.
type ListGroupsRequest struct{}

// ListGroupsResponse carries the group summaries in creation order.
type ListGroupsResponse struct {
	Groups []*GroupSummary `json:"groups"`
}

// UpdateGroupRequest renames a group or changes its emoji or date.
type UpdateGroupRequest struct {
	GroupId string `json:"groupId"`
	Name    string `json:"name"`
	Emoji   string `json:"emoji"`
	// Date replaces the display date when set.
	Date string `json:"date,omitempty"`
}

// UpdateGroupResponse carries the updated group.
type UpdateGroupResponse struct {
	Group *Group `json:"group"`
}

// DeleteGroupRequest removes a group with its items and people.
type DeleteGroupRequest struct {
	GroupId string `json:"groupId"`
}

// DeleteGroupResponse is empty.
type DeleteGroupResponse struct{}

// SetTipRequest sets the tip value and mode ("money" or "percent").
type SetTipRequest struct {
	GroupId string `json:"groupId"`
	Value   string `json:"value"`
	Mode    string `json:"mode"`
}

// SetSplitModeRequest switches between "separate" and "equal" splitting.
type SetSplitModeRequest struct {
	GroupId   string `json:"groupId"`
	Mode      string `json:"mode"`
	Headcount int32  `json:"headcount"`
}

// SplitService

// AddItemRequest appends an item with multiplier 1.
type AddItemRequest struct {
	GroupId string `json:"groupId"`
	Name    string `json:"name"`
	Price   string `json:"price"`
}

// UpdateItemRequest changes an item's name and price.
type UpdateItemRequest struct {
	GroupId string `json:"groupId"`
	ItemId  string `json:"itemId"`
	Name    string `json:"name"`
	Price   string `json:"price"`
}

// SetItemMultiplierRequest sets how many of an item were ordered.
type SetItemMultiplierRequest struct {
	GroupId    string `json:"groupId"`
	ItemId     string `json:"itemId"`
	Multiplier int32  `json:"multiplier"`
}

// DeleteItemRequest removes an item and every selection of it.
type DeleteItemRequest struct {
	GroupId string `json:"groupId"`
	ItemId  string `json:"itemId"`
}

// AddPersonRequest adds a person with no selections.
type AddPersonRequest struct {
	GroupId string `json:"groupId"`
	Name    string `json:"name"`
}

// UpdatePersonRequest renames a person.
type UpdatePersonRequest struct {
	GroupId  string `json:"groupId"`
	PersonId string `json:"personId"`
	Name     string `json:"name"`
}

// DeletePersonRequest removes a person.
type DeletePersonRequest struct {
	GroupId  string `json:"groupId"`
	PersonId string `json:"personId"`
}

// ToggleItemForPersonRequest adds or removes one selection.
type ToggleItemForPersonRequest struct {
	GroupId  string `json:"groupId"`
	PersonId string `json:"personId"`
	// ItemId is an item ID or "tip".
	ItemId string `json:"itemId"`
}

// TogglePersonPaidRequest flips a person's paid flag.
type TogglePersonPaidRequest struct {
	GroupId  string `json:"groupId"`
	PersonId string `json:"personId"`
}

// ComputeAllocationRequest names the group to allocate.
type ComputeAllocationRequest struct {
	GroupId string `json:"groupId"`
}

// GetSettlementRequest names the group to settle.
type GetSettlementRequest struct {
	GroupId string `json:"groupId"`
}

// PersonBalance is one person's amount and paid state.
type PersonBalance struct {
	PersonId string   `json:"personId"`
	Name     string   `json:"name"`
	Amount   string   `json:"amount"`
	IsPaid   bool     `json:"isPaid"`
	Items    []string `json:"items"`
}

// Settlement tallies paid and outstanding amounts for a group.
type Settlement struct {
	People      []*PersonBalance `json:"people"`
	Paid        string           `json:"paid"`
	Outstanding string           `json:"outstanding"`
	Unpaid      int32            `json:"unpaid"`
	// Display is the outstanding amount with the currency symbol.
	Display string `json:"display"`
}

// ReceiptService

// ParseReceiptLinesRequest carries OCR text, one line per entry.
type ParseReceiptLinesRequest struct {
	Lines []string `json:"lines"`
}

// ParseReceiptLinesResponse carries the candidates and the strategy that found them.
type ParseReceiptLinesResponse struct {
	Items    []*ScannedItem `json:"items"`
	Strategy string         `json:"strategy"`
}

// AcceptScannedItemsRequest adds the selected candidates to a group.
type AcceptScannedItemsRequest struct {
	GroupId string         `json:"groupId"`
	Items   []*ScannedItem `json:"items"`
}

// SettingsService

// GetSettingsRequest reads the app preferences.
type GetSettingsRequest struct{}

// Settings holds the display currency and theme.
type Settings struct {
	Currency *Currency `json:"currency"`
	Theme    string    `json:"theme"`
}

// SetCurrencyRequest selects a currency by ISO code.
type SetCurrencyRequest struct {
	Code string `json:"code"`
}

// SetThemeRequest selects "light" or "dark".
type SetThemeRequest struct {
	Theme string `json:"theme"`
}

// ListCurrenciesRequest lists the supported currencies.
type ListCurrenciesRequest struct{}

// ListCurrenciesResponse carries the currency table.
type ListCurrenciesResponse struct {
	Currencies []*Currency `json:"currencies"`
}
