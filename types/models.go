package types

import (
	"time"
)

// Person represents a user or customer record
type Person struct {
	UID              string            `json:"UID,omitempty"`
	UserName         string            `json:"UserName,omitempty"`
	FirstName        string            `json:"FirstName,omitempty"`
	LastName         string            `json:"LastName,omitempty"`
	FullName         string            `json:"FullName,omitempty"`
	PrimaryEmail     string            `json:"PrimaryEmail,omitempty"`
	AlertEmail       string            `json:"AlertEmail,omitempty"`
	AlternateID      string            `json:"AlternateID,omitempty"`
	SecurityRoleID   string            `json:"SecurityRoleID,omitempty"`
	Company          string            `json:"Company,omitempty"`
	Title            string            `json:"Title,omitempty"`
	WorkPhone        string            `json:"WorkPhone,omitempty"`
	MobilePhone      string            `json:"MobilePhone,omitempty"`
	DefaultAccountID int               `json:"DefaultAccountID,omitempty"`
	LocationID       int               `json:"LocationID,omitempty"`
	LocationRoomID   int               `json:"LocationRoomID,omitempty"`
	IsActive         bool              `json:"IsActive,omitempty"`
	TypeID           int               `json:"TypeID,omitempty"`
	Attributes       []CustomAttribute `json:"Attributes,omitempty"`
	CreatedDate      time.Time         `json:"CreatedDate,omitempty"`
	LastModifiedDate time.Time         `json:"LastModifiedDate,omitempty"`
}

// FunctionalRole represents a functional role assigned to a person
type FunctionalRole struct {
	ID           int     `json:"ID"`
	Name         string  `json:"Name"`
	StandardRate float64 `json:"StandardRate,omitempty"`
	IsPrimary    bool    `json:"IsPrimary,omitempty"`
}

// Ticket represents a service ticket
type Ticket struct {
	ID               int               `json:"ID,omitempty"`
	Title            string            `json:"Title,omitempty"`
	Description      string            `json:"Description,omitempty"`
	TypeID           int               `json:"TypeID,omitempty"`
	TypeName         string            `json:"TypeName,omitempty"`
	StatusID         int               `json:"StatusID,omitempty"`
	StatusName       string            `json:"StatusName,omitempty"`
	PriorityID       int               `json:"PriorityID,omitempty"`
	PriorityName     string            `json:"PriorityName,omitempty"`
	UrgencyID        int               `json:"UrgencyID,omitempty"`
	ImpactID         int               `json:"ImpactID,omitempty"`
	SourceID         int               `json:"SourceID,omitempty"`
	AccountID        int               `json:"AccountID,omitempty"`
	AccountName      string            `json:"AccountName,omitempty"`
	RequestorUID     string            `json:"RequestorUid,omitempty"`
	RequestorName    string            `json:"RequestorName,omitempty"`
	ResponsibleUID   string            `json:"ResponsibleUid,omitempty"`
	ResponsibleName  string            `json:"ResponsibleFullName,omitempty"`
	LocationID       int               `json:"LocationID,omitempty"`
	LocationRoomID   int               `json:"LocationRoomID,omitempty"`
	EstimatedMinutes int               `json:"EstimatedMinutes,omitempty"`
	StartDate        *time.Time        `json:"StartDate,omitempty"`
	EndDate          *time.Time        `json:"EndDate,omitempty"`
	RespondedDate    *time.Time        `json:"RespondedDate,omitempty"`
	CompletedDate    *time.Time        `json:"CompletedDate,omitempty"`
	Attributes       []CustomAttribute `json:"Attributes,omitempty"`
	Attachments      []Attachment      `json:"Attachments,omitempty"`
	CreatedDate      time.Time         `json:"CreatedDate,omitempty"`
	CreatedUID       string            `json:"CreatedUid,omitempty"`
	ModifiedDate     time.Time         `json:"ModifiedDate,omitempty"`
	ModifiedUID      string            `json:"ModifiedUid,omitempty"`
}

// TicketFeedEntry represents an entry in a ticket's activity feed
type TicketFeedEntry struct {
	ID          int       `json:"ID,omitempty"`
	TicketID    int       `json:"TicketID,omitempty"`
	Comments    string    `json:"Comments,omitempty"`
	IsPrivate   bool      `json:"IsPrivate,omitempty"`
	IsRichHTML  bool      `json:"IsRichHtml,omitempty"`
	NewStatusID int       `json:"NewStatusID,omitempty"`
	Notify      []string  `json:"Notify,omitempty"`
	CreatedUID  string    `json:"CreatedUid,omitempty"`
	CreatedName string    `json:"CreatedFullName,omitempty"`
	CreatedDate time.Time `json:"CreatedDate,omitempty"`
}

// Account represents a customer account or department
type Account struct {
	ID           int               `json:"ID,omitempty"`
	Name         string            `json:"Name,omitempty"`
	ParentID     int               `json:"ParentID,omitempty"`
	IsActive     bool              `json:"IsActive,omitempty"`
	Address1     string            `json:"Address1,omitempty"`
	Address2     string            `json:"Address2,omitempty"`
	City         string            `json:"City,omitempty"`
	StateAbbr    string            `json:"StateAbbr,omitempty"`
	PostalCode   string            `json:"PostalCode,omitempty"`
	Country      string            `json:"Country,omitempty"`
	Phone        string            `json:"Phone,omitempty"`
	ContactName  string            `json:"ContactName,omitempty"`
	ContactEmail string            `json:"ContactEmail,omitempty"`
	Notes        string            `json:"Notes,omitempty"`
	Code         string            `json:"Code,omitempty"`
	IndustryID   int               `json:"IndustryID,omitempty"`
	ManagerUID   string            `json:"ManagerUID,omitempty"`
	Attributes   []CustomAttribute `json:"Attributes,omitempty"`
	CreatedDate  time.Time         `json:"CreatedDate,omitempty"`
	ModifiedDate time.Time         `json:"ModifiedDate,omitempty"`
}

// Location represents a physical location
type Location struct {
	ID             int               `json:"ID,omitempty"`
	Name           string            `json:"Name,omitempty"`
	Description    string            `json:"Description,omitempty"`
	ExternalID     string            `json:"ExternalID,omitempty"`
	IsActive       bool              `json:"IsActive,omitempty"`
	IsRoomRequired bool              `json:"IsRoomRequired,omitempty"`
	Address        string            `json:"Address,omitempty"`
	City           string            `json:"City,omitempty"`
	State          string            `json:"State,omitempty"`
	PostalCode     string            `json:"PostalCode,omitempty"`
	Country        string            `json:"Country,omitempty"`
	Latitude       *float64          `json:"Latitude,omitempty"`
	Longitude      *float64          `json:"Longitude,omitempty"`
	AssetsCount    int               `json:"AssetsCount,omitempty"`
	TicketsCount   int               `json:"TicketsCount,omitempty"`
	RoomsCount     int               `json:"RoomsCount,omitempty"`
	Rooms          []LocationRoom    `json:"Rooms,omitempty"`
	Attributes     []CustomAttribute `json:"Attributes,omitempty"`
	CreatedDate    time.Time         `json:"CreatedDate,omitempty"`
	ModifiedDate   time.Time         `json:"ModifiedDate,omitempty"`
}

// LocationRoom represents a room within a location
type LocationRoom struct {
	ID          int       `json:"ID,omitempty"`
	Name        string    `json:"Name,omitempty"`
	ExternalID  string    `json:"ExternalID,omitempty"`
	AssetsCount int       `json:"AssetsCount,omitempty"`
	CreatedDate time.Time `json:"CreatedDate,omitempty"`
}

// Asset represents a tracked asset
type Asset struct {
	ID                      int               `json:"ID,omitempty"`
	Name                    string            `json:"Name,omitempty"`
	SerialNumber            string            `json:"SerialNumber,omitempty"`
	Tag                     string            `json:"Tag,omitempty"`
	StatusID                int               `json:"StatusID,omitempty"`
	StatusName              string            `json:"StatusName,omitempty"`
	FormID                  int               `json:"FormID,omitempty"`
	SupplierID              int               `json:"SupplierID,omitempty"`
	SupplierName            string            `json:"SupplierName,omitempty"`
	ManufacturerID          int               `json:"ManufacturerID,omitempty"`
	ManufacturerName        string            `json:"ManufacturerName,omitempty"`
	ProductModelID          int               `json:"ProductModelID,omitempty"`
	ProductModelName        string            `json:"ProductModelName,omitempty"`
	OwningCustomerID        string            `json:"OwningCustomerID,omitempty"`
	OwningDepartmentID      int               `json:"OwningDepartmentID,omitempty"`
	LocationID              int               `json:"LocationID,omitempty"`
	LocationRoomID          int               `json:"LocationRoomID,omitempty"`
	PurchaseCost            float64           `json:"PurchaseCost,omitempty"`
	AcquisitionDate         *time.Time        `json:"AcquisitionDate,omitempty"`
	ExpectedReplacementDate *time.Time        `json:"ExpectedReplacementDate,omitempty"`
	ExternalID              string            `json:"ExternalID,omitempty"`
	Attributes              []CustomAttribute `json:"Attributes,omitempty"`
	Attachments             []Attachment      `json:"Attachments,omitempty"`
	CreatedDate             time.Time         `json:"CreatedDate,omitempty"`
	ModifiedDate            time.Time         `json:"ModifiedDate,omitempty"`
}

// Article represents a knowledge base article
type Article struct {
	ID           int          `json:"ID,omitempty"`
	Subject      string       `json:"Subject,omitempty"`
	Body         string       `json:"Body,omitempty"`
	Summary      string       `json:"Summary,omitempty"`
	CategoryID   int          `json:"CategoryID,omitempty"`
	CategoryName string       `json:"CategoryName,omitempty"`
	Status       int          `json:"Status,omitempty"`
	IsPublished  bool         `json:"IsPublished,omitempty"`
	IsPublic     bool         `json:"IsPublic,omitempty"`
	ReviewDate   *time.Time   `json:"ReviewDate,omitempty"`
	OwnerUID     string       `json:"OwnerUid,omitempty"`
	Tags         []string     `json:"Tags,omitempty"`
	Attachments  []Attachment `json:"Attachments,omitempty"`
	CreatedDate  time.Time    `json:"CreatedDate,omitempty"`
	ModifiedDate time.Time    `json:"ModifiedDate,omitempty"`
}

// Attachment represents an uploaded file
type Attachment struct {
	UID            string    `json:"ID,omitempty"`
	AttachmentType int       `json:"AttachmentType,omitempty"`
	ItemID         int       `json:"ItemID,omitempty"`
	Name           string    `json:"Name,omitempty"`
	Size           int64     `json:"Size,omitempty"`
	ContentType    string    `json:"ContentType,omitempty"`
	URI            string    `json:"Uri,omitempty"`
	ContentURI     string    `json:"ContentUri,omitempty"`
	CreatedUID     string    `json:"CreatedUid,omitempty"`
	CreatedName    string    `json:"CreatedFullName,omitempty"`
	CreatedDate    time.Time `json:"CreatedDate,omitempty"`
}

// CustomAttribute represents a custom field value on a resource
type CustomAttribute struct {
	ID        int    `json:"ID"`
	Name      string `json:"Name,omitempty"`
	Value     string `json:"Value,omitempty"`
	ValueText string `json:"ValueText,omitempty"`
}

// Event represents a live resource event delivered over the event stream
type Event struct {
	Type       string    `json:"Type"`
	ItemType   string    `json:"ItemType,omitempty"`
	ItemID     int       `json:"ItemID,omitempty"`
	ItemUID    string    `json:"ItemUid,omitempty"`
	ActorUID   string    `json:"ActorUid,omitempty"`
	OccurredAt time.Time `json:"OccurredAt,omitempty"`
	Detail     string    `json:"Detail,omitempty"`
}

// ErrorResponse represents an error envelope returned by the API
type ErrorResponse struct {
	ID      int    `json:"ID,omitempty"`
	Message string `json:"Message"`
}
