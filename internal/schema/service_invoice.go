package schema

// FlowStatus is the issuance workflow state of a service invoice.
type FlowStatus string

func (FlowStatus) Values() []string {
	return []string{
		"CancelFailed",
		"IssueFailed",
		"Issued",
		"Cancelled",
		"PullFromCityHall",
		"WaitingCalculateTaxes",
		"WaitingDefineRpsNumber",
		"WaitingSend",
		"WaitingSendCancel",
		"WaitingReturn",
		"WaitingDownload",
	}
}

type InvoiceStatus string

func (InvoiceStatus) Values() []string {
	return []string{"Error", "None", "Created", "Issued", "Cancelled"}
}

type RpsType string

func (RpsType) Values() []string { return []string{"Rps", "RpsMista", "Cupom"} }

type RpsStatus string

func (RpsStatus) Values() []string { return []string{"Normal", "Canceled", "Lost"} }

type TaxationType string

func (TaxationType) Values() []string {
	return []string{
		"None",
		"WithinCity",
		"OutsideCity",
		"Export",
		"Free",
		"Immune",
		"SuspendedCourtDecision",
		"SuspendedAdministrativeProcedure",
		"OutsideCityFree",
		"OutsideCityImmune",
		"OutsideCitySuspended",
		"OutsideCitySuspendedAdministrativeProcedure",
		"ObjectiveImune",
	}
}

type ProviderStatus string

func (ProviderStatus) Values() []string { return []string{"Active", "Inactive", "Suspended"} }

// ProviderType is the party classification used on NFS-e providers.
type ProviderType string

func (ProviderType) Values() []string {
	return []string{"Undefined", "NaturalPerson", "LegalEntity", "LegalPerson", "Company", "Customer"}
}

// InvoiceCity is a municipality with its state, as embedded in NFS-e
// addresses.
type InvoiceCity struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	State string `json:"state"`
}

type InvoiceAddress struct {
	Country               string      `json:"country"`
	PostalCode            string      `json:"postalCode"`
	Street                string      `json:"street"`
	Number                string      `json:"number"`
	AdditionalInformation string      `json:"additionalInformation"`
	District              string      `json:"district"`
	City                  InvoiceCity `json:"city"`
}

// Location is where the service was rendered.
type Location struct {
	State                 string      `json:"state"`
	Country               string      `json:"country"`
	PostalCode            string      `json:"postalCode"`
	Street                string      `json:"street"`
	Number                string      `json:"number"`
	District              string      `json:"district"`
	AdditionalInformation string      `json:"additionalInformation"`
	City                  InvoiceCity `json:"city"`
}

// Provider is the issuing company as recorded on an NFS-e.
type Provider struct {
	ID                        string             `json:"id"`
	TradeName                 string             `json:"tradeName"`
	OpenningDate              string             `json:"openningDate"`
	TaxRegime                 TaxRegime          `json:"taxRegime"`
	SpecialTaxRegime          SpecialTaxRegime   `json:"specialTaxRegime"`
	LegalNature               LegalNature        `json:"legalNature"`
	EconomicActivities        []EconomicActivity `json:"economicActivities"`
	CompanyRegistryNumber     float64            `json:"companyRegistryNumber"`
	RegionalTaxNumber         float64            `json:"regionalTaxNumber"`
	MunicipalTaxNumber        string             `json:"municipalTaxNumber"`
	IssRate                   float64            `json:"issRate"`
	FederalTaxDetermination   TaxDetermination   `json:"federalTaxDetermination"`
	MunicipalTaxDetermination TaxDetermination   `json:"municipalTaxDetermination"`
	LoginName                 string             `json:"loginName"`
	LoginPassword             string             `json:"loginPassword"`
	AuthIssueValue            string             `json:"authIssueValue"`
	Name                      string             `json:"name"`
	FederalTaxNumber          float64            `json:"federalTaxNumber"`
	Email                     string             `json:"email" schema:"email"`
	Address                   InvoiceAddress     `json:"address"`
	Status                    ProviderStatus     `json:"status"`
	Type                      ProviderType       `json:"type"`
	CreatedOn                 string             `json:"createdOn"`
	ModifiedOn                string             `json:"modifiedOn"`
}

// Borrower is the service taker.
type Borrower struct {
	ParentID         string         `json:"parentId"`
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	FederalTaxNumber float64        `json:"federalTaxNumber"`
	Email            string         `json:"email" schema:"email"`
	Address          InvoiceAddress `json:"address"`
}

type ActivityEvent struct {
	Name    string `json:"name"`
	StartOn string `json:"startOn"`
	EndOn   string `json:"endOn"`
	AtvEvID string `json:"atvEvId"`
}

// ApproximateTax is the IBPT approximate tax burden disclosure.
type ApproximateTax struct {
	Source    string  `json:"source"`
	Version   string  `json:"version"`
	TotalRate float64 `json:"totalRate"`
}

// ServiceInvoice is the complete v1 NFS-e record. Every field is
// required; amountNet is expected to equal servicesAmount minus the
// withheld and deducted components but that is checked by the vendor, not
// here.
type ServiceInvoice struct {
	ID                          string         `json:"id"`
	Environment                 Environment    `json:"environment"`
	FlowStatus                  FlowStatus     `json:"flowStatus"`
	FlowMessage                 string         `json:"flowMessage"`
	Provider                    Provider       `json:"provider"`
	Borrower                    Borrower       `json:"borrower"`
	ExternalID                  string         `json:"externalId"`
	BatchNumber                 float64        `json:"batchNumber"`
	BatchCheckNumber            string         `json:"batchCheckNumber"`
	Number                      float64        `json:"number"`
	CheckCode                   string         `json:"checkCode"`
	Status                      InvoiceStatus  `json:"status"`
	RpsType                     RpsType        `json:"rpsType"`
	RpsStatus                   RpsStatus      `json:"rpsStatus"`
	TaxationType                TaxationType   `json:"taxationType"`
	IssuedOn                    string         `json:"issuedOn"`
	CancelledOn                 string         `json:"cancelledOn"`
	RpsSerialNumber             string         `json:"rpsSerialNumber"`
	RpsNumber                   float64        `json:"rpsNumber"`
	CityServiceCode             string         `json:"cityServiceCode"`
	FederalServiceCode          string         `json:"federalServiceCode"`
	Description                 string         `json:"description"`
	ServicesAmount              float64        `json:"servicesAmount"`
	DeductionsAmount            float64        `json:"deductionsAmount"`
	DiscountUnconditionedAmount float64        `json:"discountUnconditionedAmount"`
	DiscountConditionedAmount   float64        `json:"discountConditionedAmount"`
	BaseTaxAmount               float64        `json:"baseTaxAmount"`
	IssRate                     float64        `json:"issRate"`
	IssTaxAmount                float64        `json:"issTaxAmount"`
	IrAmountWithheld            float64        `json:"irAmountWithheld"`
	PisAmountWithheld           float64        `json:"pisAmountWithheld"`
	CofinsAmountWithheld        float64        `json:"cofinsAmountWithheld"`
	CsllAmountWithheld          float64        `json:"csllAmountWithheld"`
	InssAmountWithheld          float64        `json:"inssAmountWithheld"`
	IssAmountWithheld           float64        `json:"issAmountWithheld"`
	OthersAmountWithheld        float64        `json:"othersAmountWithheld"`
	AmountWithheld              float64        `json:"amountWithheld"`
	AmountNet                   float64        `json:"amountNet"`
	Location                    Location       `json:"location"`
	ActivityEvent               ActivityEvent  `json:"activityEvent"`
	ApproximateTax              ApproximateTax `json:"approximateTax"`
	AdditionalInformation       string         `json:"additionalInformation"`
	CreatedOn                   string         `json:"createdOn"`
	ModifiedOn                  string         `json:"modifiedOn"`
}

// ---- service-invoice/v2 ----

// IssueBorrower is the borrower block of an issuance request.
type IssueBorrower struct {
	Name             string          `json:"name"`
	FederalTaxNumber float64         `json:"federalTaxNumber"`
	Email            *string         `json:"email,omitempty" schema:"optional,email"`
	Address          *InvoiceAddress `json:"address,omitempty" schema:"optional"`
}

// ServiceInvoiceRequest is the relaxed issuance payload: only what the
// vendor needs to issue is required, every other NFS-e field may be sent
// and is checked with the same rules as ServiceInvoice.
type ServiceInvoiceRequest struct {
	CityServiceCode string        `json:"cityServiceCode"`
	Description     string        `json:"description"`
	ServicesAmount  float64       `json:"servicesAmount"`
	Borrower        IssueBorrower `json:"borrower"`

	ID                          *string         `json:"id,omitempty" schema:"optional"`
	Environment                 *Environment    `json:"environment,omitempty" schema:"optional"`
	FlowStatus                  *FlowStatus     `json:"flowStatus,omitempty" schema:"optional"`
	FlowMessage                 *string         `json:"flowMessage,omitempty" schema:"optional"`
	Provider                    *Provider       `json:"provider,omitempty" schema:"optional"`
	ExternalID                  *string         `json:"externalId,omitempty" schema:"optional"`
	BatchNumber                 *float64        `json:"batchNumber,omitempty" schema:"optional"`
	BatchCheckNumber            *string         `json:"batchCheckNumber,omitempty" schema:"optional"`
	Number                      *float64        `json:"number,omitempty" schema:"optional"`
	CheckCode                   *string         `json:"checkCode,omitempty" schema:"optional"`
	Status                      *InvoiceStatus  `json:"status,omitempty" schema:"optional"`
	RpsType                     *RpsType        `json:"rpsType,omitempty" schema:"optional"`
	RpsStatus                   *RpsStatus      `json:"rpsStatus,omitempty" schema:"optional"`
	TaxationType                *TaxationType   `json:"taxationType,omitempty" schema:"optional"`
	IssuedOn                    *string         `json:"issuedOn,omitempty" schema:"optional"`
	CancelledOn                 *string         `json:"cancelledOn,omitempty" schema:"optional"`
	RpsSerialNumber             *string         `json:"rpsSerialNumber,omitempty" schema:"optional"`
	RpsNumber                   *float64        `json:"rpsNumber,omitempty" schema:"optional"`
	FederalServiceCode          *string         `json:"federalServiceCode,omitempty" schema:"optional"`
	DeductionsAmount            *float64        `json:"deductionsAmount,omitempty" schema:"optional"`
	DiscountUnconditionedAmount *float64        `json:"discountUnconditionedAmount,omitempty" schema:"optional"`
	DiscountConditionedAmount   *float64        `json:"discountConditionedAmount,omitempty" schema:"optional"`
	BaseTaxAmount               *float64        `json:"baseTaxAmount,omitempty" schema:"optional"`
	IssRate                     *float64        `json:"issRate,omitempty" schema:"optional"`
	IssTaxAmount                *float64        `json:"issTaxAmount,omitempty" schema:"optional"`
	IrAmountWithheld            *float64        `json:"irAmountWithheld,omitempty" schema:"optional"`
	PisAmountWithheld           *float64        `json:"pisAmountWithheld,omitempty" schema:"optional"`
	CofinsAmountWithheld        *float64        `json:"cofinsAmountWithheld,omitempty" schema:"optional"`
	CsllAmountWithheld          *float64        `json:"csllAmountWithheld,omitempty" schema:"optional"`
	InssAmountWithheld          *float64        `json:"inssAmountWithheld,omitempty" schema:"optional"`
	IssAmountWithheld           *float64        `json:"issAmountWithheld,omitempty" schema:"optional"`
	OthersAmountWithheld        *float64        `json:"othersAmountWithheld,omitempty" schema:"optional"`
	AmountWithheld              *float64        `json:"amountWithheld,omitempty" schema:"optional"`
	AmountNet                   *float64        `json:"amountNet,omitempty" schema:"optional"`
	Location                    *Location       `json:"location,omitempty" schema:"optional"`
	ActivityEvent               *ActivityEvent  `json:"activityEvent,omitempty" schema:"optional"`
	ApproximateTax              *ApproximateTax `json:"approximateTax,omitempty" schema:"optional"`
	AdditionalInformation       *string         `json:"additionalInformation,omitempty" schema:"optional"`
	CreatedOn                   *string         `json:"createdOn,omitempty" schema:"optional"`
	ModifiedOn                  *string         `json:"modifiedOn,omitempty" schema:"optional"`
}
