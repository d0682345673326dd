package types

import "time"

// PatchOperation represents a single JSON patch operation applied to a ticket
type PatchOperation struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value,omitempty"`
}

// PersonSearch represents search criteria for people
type PersonSearch struct {
	SearchText   string `json:"SearchText,omitempty"`
	UserName     string `json:"UserName,omitempty"`
	FirstName    string `json:"FirstName,omitempty"`
	LastName     string `json:"LastName,omitempty"`
	PrimaryEmail string `json:"PrimaryEmail,omitempty"`
	AlternateID  string `json:"AlternateID,omitempty"`
	ExternalID   string `json:"ExternalID,omitempty"`
	AccountIDs   []int  `json:"AccountIDs,omitempty"`
	IsActive     *bool  `json:"IsActive,omitempty"`
	IsEmployee   *bool  `json:"IsEmployee,omitempty"`
	MaxResults   int    `json:"MaxResults,omitempty"`
}

// TicketSearch represents search criteria for tickets
type TicketSearch struct {
	SearchText       string     `json:"SearchText,omitempty"`
	TicketIDs        []int      `json:"TicketIDs,omitempty"`
	StatusIDs        []int      `json:"StatusIDs,omitempty"`
	PriorityIDs      []int      `json:"PriorityIDs,omitempty"`
	TypeIDs          []int      `json:"TypeIDs,omitempty"`
	AccountIDs       []int      `json:"AccountIDs,omitempty"`
	RequestorUIDs    []string   `json:"RequestorUids,omitempty"`
	ResponsibleUIDs  []string   `json:"ResponsibilityUids,omitempty"`
	LocationIDs      []int      `json:"LocationIDs,omitempty"`
	CreatedDateFrom  *time.Time `json:"CreatedDateFrom,omitempty"`
	CreatedDateTo    *time.Time `json:"CreatedDateTo,omitempty"`
	ModifiedDateFrom *time.Time `json:"ModifiedDateFrom,omitempty"`
	ModifiedDateTo   *time.Time `json:"ModifiedDateTo,omitempty"`
	MaxResults       int        `json:"MaxResults,omitempty"`
}

// AccountSearch represents search criteria for accounts
type AccountSearch struct {
	SearchText       string            `json:"SearchText,omitempty"`
	ManagerUIDs      []string          `json:"ManagerUids,omitempty"`
	CustomAttributes []CustomAttribute `json:"CustomAttributes,omitempty"`
	IsActive         *bool             `json:"IsActive,omitempty"`
	MaxResults       int               `json:"MaxResults,omitempty"`
}

// LocationSearch represents search criteria for locations
type LocationSearch struct {
	NameLike         string `json:"NameLike,omitempty"`
	IsActive         *bool  `json:"IsActive,omitempty"`
	IsRoomRequired   *bool  `json:"IsRoomRequired,omitempty"`
	RoomID           int    `json:"RoomID,omitempty"`
	ReturnItemCounts bool   `json:"ReturnItemCounts,omitempty"`
	ReturnRooms      bool   `json:"ReturnRooms,omitempty"`
	MaxResults       int    `json:"MaxResults,omitempty"`
}

// AssetSearch represents search criteria for assets
type AssetSearch struct {
	SearchText          string   `json:"SearchText,omitempty"`
	SerialLike          string   `json:"SerialLike,omitempty"`
	StatusIDs           []int    `json:"StatusIDs,omitempty"`
	SupplierIDs         []int    `json:"SupplierIDs,omitempty"`
	ManufacturerIDs     []int    `json:"ManufacturerIDs,omitempty"`
	ProductModelIDs     []int    `json:"ProductModelIDs,omitempty"`
	LocationIDs         []int    `json:"LocationIDs,omitempty"`
	RoomID              int      `json:"RoomID,omitempty"`
	OwningCustomerIDs   []string `json:"OwningCustomerIDs,omitempty"`
	OwningDepartmentIDs []int    `json:"OwningDepartmentIDs,omitempty"`
	ExternalIDs         []string `json:"ExternalIDs,omitempty"`
	MaxResults          int      `json:"MaxResults,omitempty"`
}

// ArticleSearch represents search criteria for knowledge base articles
type ArticleSearch struct {
	SearchText           string `json:"SearchText,omitempty"`
	CategoryID           int    `json:"CategoryID,omitempty"`
	Status               int    `json:"Status,omitempty"`
	IsPublished          *bool  `json:"IsPublished,omitempty"`
	IsPublic             *bool  `json:"IsPublic,omitempty"`
	AuthorUID            string `json:"AuthorUid,omitempty"`
	ReturnCount          int    `json:"ReturnCount,omitempty"`
	IncludeArticleBodies bool   `json:"IncludeArticleBodies,omitempty"`
}
