package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	BankTransfer PaymentMethod = "bank_transfer"
	PayPal       PaymentMethod = "paypal"
	Crypto       PaymentMethod = "crypto"
	Check        PaymentMethod = "check"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case BankTransfer, PayPal, Crypto, Check:
		return true
	}
	return false
}

type PayoutStatus string

const (
	StatusPending   PayoutStatus = "pending"
	StatusApproved  PayoutStatus = "approved"
	StatusCompleted PayoutStatus = "completed"
	StatusRejected  PayoutStatus = "rejected"
)

// Is compares statuses case-insensitively; the ledger is not consistent about casing.
func (s PayoutStatus) Is(other string) bool {
	return strings.EqualFold(string(s), other)
}

// PayoutRequest is what the author typed into the payout form. Amount stays
// raw text until it is validated.
type PayoutRequest struct {
	Amount        string
	PaymentMethod PaymentMethod
}

type Payout struct {
	ID            string          `json:"_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Status        PayoutStatus    `json:"status"`
	CreatedAt     Timestamp       `json:"createdAt" swaggertype:"string"`
	PaymentDate   *Timestamp      `json:"paymentDate,omitempty" swaggertype:"string"`
	TransactionID string          `json:"transactionId,omitempty"`
}

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

type BankAccount struct {
	AccountNumber string `json:"accountNumber,omitempty"`
	IFSCCode      string `json:"ifscCode,omitempty"`
	BankName      string `json:"bankName,omitempty"`
}

type ProfileDetails struct {
	Bio string `json:"bio,omitempty"`
}

type Profile struct {
	ID            string          `json:"_id"`
	Username      string          `json:"username,omitempty"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Role          string          `json:"role,omitempty"`
	PhoneNumber   string          `json:"phoneNumber,omitempty"`
	Address       Address         `json:"address"`
	Details       ProfileDetails  `json:"profile"`
	BankAccount   BankAccount     `json:"bankAccount"`
	AadhaarNumber string          `json:"aadhaarNumber,omitempty"`
	PANNumber     string          `json:"panNumber,omitempty"`
	WalletBalance decimal.Decimal `json:"walletBalance"`
}

type ProfileUpdate struct {
	Name        string         `json:"name"`
	PhoneNumber string         `json:"phoneNumber"`
	Address     Address        `json:"address"`
	Details     ProfileDetails `json:"profile"`
}

type KYCInformation struct {
	AadhaarNumber string `json:"aadhaarNumber,omitempty"`
	PANNumber     string `json:"panNumber,omitempty"`
}

type KYCUpdate struct {
	BankAccount    BankAccount    `json:"bankAccount"`
	KYCInformation KYCInformation `json:"kycInformation"`
}

// Empty reports whether the update carries no KYC or bank field at all.
func (k KYCUpdate) Empty() bool {
	return k.BankAccount == (BankAccount{}) && k.KYCInformation == (KYCInformation{})
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Session struct {
	Token string   `json:"token"`
	User  *Profile `json:"user,omitempty"`
}

type MarketplaceLinks struct {
	Amazon   string `json:"amazon,omitempty"`
	Flipkart string `json:"flipkart,omitempty"`
}

type Publication struct {
	PublicationID string  `json:"publicationId,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	PublishedDate string  `json:"publishedDate,omitempty"`
	Description   string  `json:"description,omitempty"`
}

type Book struct {
	ID               string           `json:"_id,omitempty"`
	Title            string           `json:"title"`
	Price            decimal.Decimal  `json:"price"`
	Stock            int              `json:"stock"`
	Category         string           `json:"category,omitempty"`
	ISBN             string           `json:"isbn,omitempty"`
	MarketplaceLinks MarketplaceLinks `json:"marketplaceLinks"`
	Publication      Publication      `json:"publication"`
	SoldCopies       int              `json:"soldCopies"`
	Royalties        decimal.Decimal  `json:"royalties"`
	LastMonthSale    int              `json:"lastMonthSale"`
	TotalRevenue     decimal.Decimal  `json:"totalRevenue"`
}

type DashboardStats struct {
	TotalBooks         int             `json:"totalBooks"`
	TotalInventory     int             `json:"totalInventory"`
	CopiesSold         int             `json:"copiesSold"`
	TotalRoyaltyEarned decimal.Decimal `json:"totalRoyaltyEarned"`
	CurrentMonthGrowth float64         `json:"currentMonthGrowth"`
}

const (
	RoleAuthor = "author"
	RoleAdmin  = "admin"
)

func ValidRole(role string) bool {
	return role == RoleAuthor || role == RoleAdmin
}

type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type UserStats struct {
	Total   int            `json:"total"`
	ByRole  map[string]int `json:"byRole,omitempty"`
	Authors int            `json:"authors,omitempty"`
	Admins  int            `json:"admins,omitempty"`
}

type Notification struct {
	ID        string    `json:"_id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt Timestamp `json:"createdAt" swaggertype:"string"`
}

type NotificationFeed struct {
	Notifications []Notification `json:"notifications"`
	Unread        int            `json:"unread"`
}

type OrderPaymentMethod string

const (
	PayFromWallet OrderPaymentMethod = "wallet"
	PayRazorpay   OrderPaymentMethod = "razorpay"
)

func (m OrderPaymentMethod) Valid() bool {
	return m == PayFromWallet || m == PayRazorpay
}

// OrderRequest buys copies of one of the author's own books.
type OrderRequest struct {
	BookID        string             `json:"bookId"`
	Quantity      int                `json:"quantity"`
	PaymentMethod OrderPaymentMethod `json:"paymentMethod"`
}

// Order is what the ledger answers to a placed order. For razorpay orders it
// carries what the checkout widget needs; wallet orders are settled already.
type Order struct {
	OrderID       string             `json:"orderId,omitempty"`
	Amount        decimal.Decimal    `json:"amount" swaggertype:"number"`
	PaymentMethod OrderPaymentMethod `json:"paymentMethod"`
	Status        string             `json:"status,omitempty"`
	RazorpayKeyID string             `json:"razorpayKeyId,omitempty"`
	User          *User              `json:"user,omitempty"`
}

type PaymentVerification struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

type PaymentVerificationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type SubmissionStatus string

const (
	SubmissionInFlight  SubmissionStatus = "in_flight"
	SubmissionSucceeded SubmissionStatus = "succeeded"
	SubmissionFailed    SubmissionStatus = "failed"
)

// Submission is one journaled payout attempt.
type Submission struct {
	ID             int64            `db:"id"`
	IdempotencyKey string           `db:"idempotency_key"`
	Session        string           `db:"session"`
	Amount         decimal.Decimal  `db:"amount"`
	PaymentMethod  PaymentMethod    `db:"payment_method"`
	Status         SubmissionStatus `db:"status"`
	PayoutID       string           `db:"payout_id"`
	CreatedAt      time.Time        `db:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at"`
}

var ErrDuplicateSubmission = errors.New("identical payout request is already being processed")
