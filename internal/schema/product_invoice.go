package schema

// ---- product-invoice/v2 ----

// PaymentMethod is the means of payment of an NF-e payment detail.
type PaymentMethod string

func (PaymentMethod) Values() []string {
	return []string{
		"Cash",
		"Cheque",
		"CreditCard",
		"DebitCard",
		"StoreCredict",
		"FoodVouchers",
		"MealVouchers",
		"GiftVouchers",
		"FuelVouchers",
		"BankBill",
		"BankDeposit",
		"InstantPayment",
		"WireTransfer",
		"Cashback",
		"WithoutPayment",
		"Others",
	}
}

type PaymentType string

func (PaymentType) Values() []string { return []string{"InCash", "Term"} }

type FlagCard string

func (FlagCard) Values() []string {
	return []string{
		"None",
		"Visa",
		"Mastercard",
		"AmericanExpress",
		"Sorocred",
		"DinersClub",
		"Elo",
		"Hipercard",
		"Aura",
		"Cabal",
		"Alelo",
		"BanesCard",
		"CalCard",
		"Credz",
		"Discover",
		"GoodCard",
		"GreenCard",
		"Hiper",
		"JCB",
		"Mais",
		"MaxVan",
		"Policard",
		"RedeCompras",
		"Sodexo",
		"ValeCard",
		"Verocheque",
		"VR",
		"Ticket",
		"Other",
	}
}

type IntegrationPaymentType string

func (IntegrationPaymentType) Values() []string { return []string{"Integrated", "NotIntegrated"} }

type OperationType string

func (OperationType) Values() []string { return []string{"Outgoing", "Incoming"} }

type Destination string

func (Destination) Values() []string { return []string{"None", "Internal_Operation", "Interstate_Operation", "International_Operation"} }

type PrintType string

func (PrintType) Values() []string {
	return []string{
		"None",
		"NFeNormalPortrait",
		"NFeNormalLandscape",
		"NFeSimplified",
		"DANFE_NFC_E",
		"DANFE_NFC_E_MSG_ELETRONICA",
	}
}

type PurposeType string

func (PurposeType) Values() []string {
	return []string{
		"None",
		"Normal",
		"Complement",
		"Adjustment",
		"Devolution",
	}
}

type ConsumerType string

func (ConsumerType) Values() []string { return []string{"FinalConsumer", "Normal"} }

type ConsumerPresenceType string

func (ConsumerPresenceType) Values() []string {
	return []string{
		"None",
		"Presence",
		"Internet",
		"Telephone",
		"Delivery",
		"OthersNonPresenceOperation",
	}
}

// PartyType classifies buyers, carriers and delivery parties on an NF-e.
type PartyType string

func (PartyType) Values() []string {
	return []string{
		"Undefined",
		"NaturalPerson",
		"LegalEntity",
		"Company",
		"Customer",
	}
}

type ReceiverStateTaxIndicator string

func (ReceiverStateTaxIndicator) Values() []string { return []string{"None", "TaxPayer", "Exempt", "NonTaxPayer"} }

// GoodsTaxRegime is the NF-e tax regime set, which adds the Simples
// Nacional sub-limit variant to the NFS-e set.
type GoodsTaxRegime string

func (GoodsTaxRegime) Values() []string {
	return []string{
		"None",
		"LucroReal",
		"LucroPresumido",
		"SimplesNacional",
		"SimplesNacionalExcessoSublimite",
		"MicroempreendedorIndividual",
		"Isento",
	}
}

type ShippingModality string

func (ShippingModality) Values() []string {
	return []string{
		"ByIssuer",
		"ByReceiver",
		"ByThirdParties",
		"OwnBySender",
		"OwnByBuyer",
		"Free",
	}
}

// StateCode is a Brazilian state (UF) abbreviation; EX marks abroad.
type StateCode string

func (StateCode) Values() []string {
	return []string{
		"NA",
		"RO",
		"AC",
		"AM",
		"RR",
		"PA",
		"AP",
		"TO",
		"MA",
		"PI",
		"CE",
		"RN",
		"PB",
		"PE",
		"AL",
		"SE",
		"BA",
		"MG",
		"ES",
		"RJ",
		"SP",
		"PR",
		"SC",
		"RS",
		"MS",
		"MT",
		"GO",
		"DF",
		"EX",
	}
}

type ExemptReason string

func (ExemptReason) Values() []string { return []string{"Agriculture", "Others", "DevelopmentEntities"} }

type DeductionIndicator string

func (DeductionIndicator) Values() []string { return []string{"NotDeduct", "Deduce"} }

type InternationalTransportType string

func (InternationalTransportType) Values() []string {
	return []string{
		"None",
		"Maritime",
		"River",
		"Lake",
		"Airline",
		"Postal",
		"Railway",
		"Highway",
		"Network",
		"Own",
		"Ficta",
		"Courier",
		"Handcarry",
	}
}

type IntermediationType string

func (IntermediationType) Values() []string { return []string{"None", "ByOwn", "ImportOnBehalf", "ByOrder"} }

type GoodsCity struct {
	Code *string `json:"code,omitempty" schema:"nullable"`
	Name *string `json:"name,omitempty" schema:"nullable"`
}

// GoodsAddress is the NF-e address block. Every part may be null.
type GoodsAddress struct {
	State                 *string    `json:"state,omitempty" schema:"nullable"`
	City                  *GoodsCity `json:"city,omitempty" schema:"nullable"`
	District              *string    `json:"district,omitempty" schema:"nullable"`
	AdditionalInformation *string    `json:"additionalInformation,omitempty" schema:"nullable"`
	Street                *string    `json:"street,omitempty" schema:"nullable"`
	Number                *string    `json:"number,omitempty" schema:"nullable"`
	PostalCode            *string    `json:"postalCode,omitempty" schema:"nullable"`
	Country               *string    `json:"country,omitempty" schema:"nullable"`
	Phone                 *string    `json:"phone,omitempty" schema:"nullable"`
}

type Card struct {
	FederalTaxNumber          *string                `json:"federalTaxNumber,omitempty" schema:"nullable"`
	Flag                      FlagCard               `json:"flag"`
	Authorization             *string                `json:"authorization,omitempty" schema:"nullable"`
	IntegrationPaymentType    IntegrationPaymentType `json:"integrationPaymentType"`
	FederalTaxNumberRecipient *string                `json:"federalTaxNumberRecipient,omitempty" schema:"nullable"`
	IDPaymentTerminal         *string                `json:"idPaymentTerminal,omitempty" schema:"nullable"`
}

type PaymentDetail struct {
	Method              PaymentMethod `json:"method"`
	MethodDescription   *string       `json:"methodDescription,omitempty" schema:"nullable"`
	PaymentType         PaymentType   `json:"paymentType"`
	Amount              *float64      `json:"amount,omitempty" schema:"nullable"`
	Card                *Card         `json:"card,omitempty" schema:"nullable"`
	PaymentDate         *string       `json:"paymentDate,omitempty" schema:"nullable,datetime"`
	FederalTaxNumberPag *string       `json:"federalTaxNumberPag,omitempty" schema:"nullable"`
	StatePag            *string       `json:"statePag,omitempty" schema:"nullable"`
}

type Payment struct {
	PaymentDetail []PaymentDetail `json:"paymentDetail,omitempty" schema:"nullable"`
	PayBack       *float64        `json:"payBack,omitempty" schema:"nullable"`
}

type Buyer struct {
	AccountID               *string                   `json:"accountId,omitempty" schema:"nullable"`
	ID                      *string                   `json:"id,omitempty" schema:"nullable"`
	Name                    *string                   `json:"name,omitempty" schema:"nullable"`
	FederalTaxNumber        *float64                  `json:"federalTaxNumber,omitempty" schema:"nullable"`
	Email                   *string                   `json:"email,omitempty" schema:"nullable"`
	Address                 *GoodsAddress             `json:"address,omitempty" schema:"nullable"`
	Type                    PartyType                 `json:"type"`
	StateTaxNumberIndicator ReceiverStateTaxIndicator `json:"stateTaxNumberIndicator"`
	TradeName               *string                   `json:"tradeName,omitempty" schema:"nullable"`
	TaxRegime               GoodsTaxRegime            `json:"taxRegime"`
	StateTaxNumber          *string                   `json:"stateTaxNumber,omitempty" schema:"nullable"`
}

type Reboque struct {
	Plate *string `json:"plate,omitempty" schema:"nullable"`
	UF    *string `json:"uf,omitempty" schema:"nullable"`
	RNTC  *string `json:"rntc,omitempty" schema:"nullable"`
	Wagon *string `json:"wagon,omitempty" schema:"nullable"`
	Ferry *string `json:"ferry,omitempty" schema:"nullable"`
}

type Volume struct {
	VolumeQuantity   *int64   `json:"volumeQuantity,omitempty" schema:"nullable"`
	Species          *string  `json:"species,omitempty" schema:"nullable"`
	Brand            *string  `json:"brand,omitempty" schema:"nullable"`
	VolumeNumeration *string  `json:"volumeNumeration,omitempty" schema:"nullable"`
	NetWeight        *float64 `json:"netWeight,omitempty" schema:"nullable"`
	GrossWeight      *float64 `json:"grossWeight,omitempty" schema:"nullable"`
}

type TransportVehicle struct {
	Plate *string `json:"plate,omitempty" schema:"nullable"`
	State *string `json:"state,omitempty" schema:"nullable"`
	RNTC  *string `json:"rntc,omitempty" schema:"nullable"`
}

type TransportRate struct {
	ServiceAmount         *float64 `json:"serviceAmount,omitempty" schema:"nullable"`
	BCRetentionAmount     *float64 `json:"bcRetentionAmount,omitempty" schema:"nullable"`
	ICMSRetentionRate     *float64 `json:"icmsRetentionRate,omitempty" schema:"nullable"`
	ICMSRetentionAmount   *float64 `json:"icmsRetentionAmount,omitempty" schema:"nullable"`
	CFOP                  *float64 `json:"cfop,omitempty" schema:"nullable"`
	CityGeneratorFactCode *float64 `json:"cityGeneratorFactCode,omitempty" schema:"nullable"`
}

type TransportGroup struct {
	AccountID          *string       `json:"accountId,omitempty" schema:"nullable"`
	ID                 *string       `json:"id,omitempty" schema:"nullable"`
	Name               *string       `json:"name,omitempty" schema:"nullable"`
	FederalTaxNumber   *float64      `json:"federalTaxNumber,omitempty" schema:"nullable"`
	Email              *string       `json:"email,omitempty" schema:"nullable"`
	Address            *GoodsAddress `json:"address,omitempty" schema:"nullable"`
	Type               PartyType     `json:"type"`
	StateTaxNumber     *string       `json:"stateTaxNumber,omitempty" schema:"nullable"`
	TransportRetention *string       `json:"transportRetention,omitempty" schema:"nullable"`
}

type TransportInformation struct {
	FreightModality  ShippingModality  `json:"freightModality"`
	TransportGroup   *TransportGroup   `json:"transportGroup,omitempty" schema:"nullable"`
	Reboque          *Reboque          `json:"reboque,omitempty" schema:"nullable"`
	Volume           *Volume           `json:"volume,omitempty" schema:"nullable"`
	TransportVehicle *TransportVehicle `json:"transportVehicle,omitempty" schema:"nullable"`
	SealNumber       *string           `json:"sealNumber,omitempty" schema:"nullable"`
	TranspRate       *TransportRate    `json:"transpRate,omitempty" schema:"nullable"`
}

type TaxCouponInformation struct {
	ModelDocumentFiscal *string  `json:"modelDocumentFiscal,omitempty" schema:"nullable"`
	OrderECF            *string  `json:"orderECF,omitempty" schema:"nullable"`
	OrderCountOperation *float64 `json:"orderCountOperation,omitempty" schema:"nullable"`
}

type DocumentInvoiceReference struct {
	State            *float64 `json:"state,omitempty" schema:"nullable"`
	YearMonth        *string  `json:"yearMonth,omitempty" schema:"nullable"`
	FederalTaxNumber *string  `json:"federalTaxNumber,omitempty" schema:"nullable"`
	Model            *string  `json:"model,omitempty" schema:"nullable"`
	Series           *string  `json:"series,omitempty" schema:"nullable"`
	Number           *string  `json:"number,omitempty" schema:"nullable"`
}

type DocumentElectronicInvoice struct {
	AccessKey *string `json:"accessKey,omitempty" schema:"nullable"`
}

type TaxDocumentsReference struct {
	TaxCouponInformation      *TaxCouponInformation      `json:"taxCouponInformation,omitempty" schema:"nullable"`
	DocumentInvoiceReference  *DocumentInvoiceReference  `json:"documentInvoiceReference,omitempty" schema:"nullable"`
	DocumentElectronicInvoice *DocumentElectronicInvoice `json:"documentElectronicInvoice,omitempty" schema:"nullable"`
}

type TaxpayerComments struct {
	Field *string `json:"field,omitempty" schema:"nullable"`
	Text  *string `json:"text,omitempty" schema:"nullable"`
}

type ReferencedProcess struct {
	IdentifierConcessory *string `json:"identifierConcessory,omitempty" schema:"nullable"`
	IdentifierOrigin     *int64  `json:"identifierOrigin,omitempty" schema:"nullable"`
	ConcessionActType    *int64  `json:"concessionActType,omitempty" schema:"nullable"`
}

type InvoiceAdditionalInformation struct {
	Fisco                 *string                 `json:"fisco,omitempty" schema:"nullable"`
	Taxpayer              *string                 `json:"taxpayer,omitempty" schema:"nullable"`
	XMLAuthorized         []float64               `json:"xmlAuthorized,omitempty" schema:"nullable"`
	Effort                *string                 `json:"effort,omitempty" schema:"nullable"`
	Order                 *string                 `json:"order,omitempty" schema:"nullable"`
	Contract              *string                 `json:"contract,omitempty" schema:"nullable"`
	TaxDocumentsReference []TaxDocumentsReference `json:"taxDocumentsReference,omitempty" schema:"nullable"`
	TaxpayerComments      []TaxpayerComments      `json:"taxpayerComments,omitempty" schema:"nullable"`
	ReferencedProcess     []ReferencedProcess     `json:"referencedProcess,omitempty" schema:"nullable"`
}

type ExportInformation struct {
	State  StateCode `json:"state"`
	Office *string   `json:"office,omitempty" schema:"nullable"`
	Local  *string   `json:"local,omitempty" schema:"nullable"`
}

type CIDE struct {
	BC         *float64 `json:"bc,omitempty" schema:"nullable"`
	Rate       *float64 `json:"rate,omitempty" schema:"nullable"`
	CIDEAmount *float64 `json:"cideAmount,omitempty" schema:"nullable"`
}

type Pump struct {
	SpoutNumber     *int64   `json:"spoutNumber,omitempty" schema:"nullable"`
	Number          *int64   `json:"number,omitempty" schema:"nullable"`
	TankNumber      *int64   `json:"tankNumber,omitempty" schema:"nullable"`
	BeginningAmount *float64 `json:"beginningAmount,omitempty" schema:"nullable"`
	EndAmount       *float64 `json:"endAmount,omitempty" schema:"nullable"`
	PercentageBio   *float64 `json:"percentageBio,omitempty" schema:"nullable"`
}

type FuelOrigin struct {
	IndImport *int64   `json:"indImport,omitempty" schema:"nullable"`
	CUFOrig   *int64   `json:"cUFOrig,omitempty" schema:"nullable"`
	POrig     *float64 `json:"pOrig,omitempty" schema:"nullable"`
}

// Fuel carries ANP fuel data for fuel items.
type Fuel struct {
	CodeANP        *string     `json:"codeANP,omitempty" schema:"nullable"`
	PercentageNG   *float64    `json:"percentageNG,omitempty" schema:"nullable"`
	DescriptionANP *string     `json:"descriptionANP,omitempty" schema:"nullable"`
	PercentageGLP  *float64    `json:"percentageGLP,omitempty" schema:"nullable"`
	PercentageNGn  *float64    `json:"percentageNGn,omitempty" schema:"nullable"`
	PercentageGNi  *float64    `json:"percentageGNi,omitempty" schema:"nullable"`
	StartingAmount *float64    `json:"startingAmount,omitempty" schema:"nullable"`
	Codif          *string     `json:"codif,omitempty" schema:"nullable"`
	AmountTemp     *float64    `json:"amountTemp,omitempty" schema:"nullable"`
	StateBuyer     *string     `json:"stateBuyer,omitempty" schema:"nullable"`
	CIDE           *CIDE       `json:"cide,omitempty" schema:"nullable"`
	Pump           *Pump       `json:"pump,omitempty" schema:"nullable"`
	FuelOrigin     *FuelOrigin `json:"fuelOrigin,omitempty" schema:"nullable"`
}

type Addition struct {
	Code         *int64   `json:"code,omitempty" schema:"nullable"`
	Manufacturer *string  `json:"manufacturer,omitempty" schema:"nullable"`
	Amount       *float64 `json:"amount,omitempty" schema:"nullable"`
	Drawback     *int64   `json:"drawback,omitempty" schema:"nullable"`
}

type ImportDeclaration struct {
	Code                     *string                    `json:"code,omitempty" schema:"nullable"`
	RegisteredOn             *string                    `json:"registeredOn,omitempty" schema:"nullable,datetime"`
	CustomsClearanceName     *string                    `json:"customsClearanceName,omitempty" schema:"nullable"`
	CustomsClearanceState    StateCode                  `json:"customsClearanceState"`
	CustomsClearancedOn      *string                    `json:"customsClearancedOn,omitempty" schema:"nullable,datetime"`
	Additions                []Addition                 `json:"additions,omitempty" schema:"nullable"`
	Exporter                 *string                    `json:"exporter,omitempty" schema:"nullable"`
	InternationalTransport   InternationalTransportType `json:"internationalTransport"`
	Intermediation           IntermediationType         `json:"intermediation"`
	AcquirerFederalTaxNumber *string                    `json:"acquirerFederalTaxNumber,omitempty" schema:"nullable"`
	StateThird               *string                    `json:"stateThird,omitempty" schema:"nullable"`
}

type ExportHint struct {
	RegistryID *string  `json:"registryId,omitempty" schema:"nullable"`
	AccessKey  *string  `json:"accessKey,omitempty" schema:"nullable"`
	Quantity   *float64 `json:"quantity,omitempty" schema:"nullable"`
}

type ExportDetail struct {
	Drawback        *string     `json:"drawback,omitempty" schema:"nullable"`
	HintInformation *ExportHint `json:"hintInformation,omitempty" schema:"nullable"`
}

type ItemTaxDetermination struct {
	OperationCode      *int64  `json:"operationCode,omitempty" schema:"nullable"`
	IssuerTaxProfile   *string `json:"issuerTaxProfile,omitempty" schema:"nullable"`
	BuyerTaxProfile    *string `json:"buyerTaxProfile,omitempty" schema:"nullable"`
	Origin             *string `json:"origin,omitempty" schema:"nullable"`
	AcquisitionPurpose *string `json:"acquisitionPurpose,omitempty" schema:"nullable"`
}

type ICMSTax struct {
	Origin                        *string            `json:"origin,omitempty" schema:"nullable"`
	CST                           *string            `json:"cst,omitempty" schema:"nullable"`
	CSOSN                         *string            `json:"csosn,omitempty" schema:"nullable"`
	BaseTaxModality               *string            `json:"baseTaxModality,omitempty" schema:"nullable"`
	BaseTax                       *float64           `json:"baseTax,omitempty" schema:"nullable"`
	BaseTaxSTModality             *string            `json:"baseTaxSTModality,omitempty" schema:"nullable"`
	BaseTaxSTReduction            *string            `json:"baseTaxSTReduction,omitempty" schema:"nullable"`
	BaseTaxST                     *float64           `json:"baseTaxST,omitempty" schema:"nullable"`
	BaseTaxReduction              *float64           `json:"baseTaxReduction,omitempty" schema:"nullable"`
	STRate                        *float64           `json:"stRate,omitempty" schema:"nullable"`
	STAmount                      *float64           `json:"stAmount,omitempty" schema:"nullable"`
	STMarginAmount                *float64           `json:"stMarginAmount,omitempty" schema:"nullable"`
	Rate                          *float64           `json:"rate,omitempty" schema:"nullable"`
	Amount                        *float64           `json:"amount,omitempty" schema:"nullable"`
	Percentual                    *float64           `json:"percentual,omitempty" schema:"nullable"`
	SNCreditRate                  *float64           `json:"snCreditRate,omitempty" schema:"nullable"`
	SNCreditAmount                *float64           `json:"snCreditAmount,omitempty" schema:"nullable"`
	STMarginAddedAmount           *string            `json:"stMarginAddedAmount,omitempty" schema:"nullable"`
	STRetentionAmount             *string            `json:"stRetentionAmount,omitempty" schema:"nullable"`
	BaseSTRetentionAmount         *string            `json:"baseSTRetentionAmount,omitempty" schema:"nullable"`
	BaseTaxOperationPercentual    *string            `json:"baseTaxOperationPercentual,omitempty" schema:"nullable"`
	UFST                          *string            `json:"ufst,omitempty" schema:"nullable"`
	AmountSTReason                *string            `json:"amountSTReason,omitempty" schema:"nullable"`
	BaseSNRetentionAmount         *string            `json:"baseSNRetentionAmount,omitempty" schema:"nullable"`
	SNRetentionAmount             *string            `json:"snRetentionAmount,omitempty" schema:"nullable"`
	AmountOperation               *string            `json:"amountOperation,omitempty" schema:"nullable"`
	PercentualDeferment           *string            `json:"percentualDeferment,omitempty" schema:"nullable"`
	BaseDeferred                  *string            `json:"baseDeferred,omitempty" schema:"nullable"`
	ExemptAmount                  *float64           `json:"exemptAmount,omitempty" schema:"nullable"`
	ExemptReason                  ExemptReason       `json:"exemptReason"`
	ExemptAmountST                *float64           `json:"exemptAmountST,omitempty" schema:"nullable"`
	ExemptReasonST                ExemptReason       `json:"exemptReasonST"`
	FCPRate                       *float64           `json:"fcpRate,omitempty" schema:"nullable"`
	FCPAmount                     *float64           `json:"fcpAmount,omitempty" schema:"nullable"`
	FCPSTRate                     *float64           `json:"fcpstRate,omitempty" schema:"nullable"`
	FCPSTAmount                   *float64           `json:"fcpstAmount,omitempty" schema:"nullable"`
	FCPSTRetRate                  *float64           `json:"fcpstRetRate,omitempty" schema:"nullable"`
	FCPSTRetAmount                *float64           `json:"fcpstRetAmount,omitempty" schema:"nullable"`
	BaseTaxFCPSTAmount            *float64           `json:"baseTaxFCPSTAmount,omitempty" schema:"nullable"`
	SubstituteAmount              *float64           `json:"substituteAmount,omitempty" schema:"nullable"`
	STFinalConsumerRate           *float64           `json:"stFinalConsumerRate,omitempty" schema:"nullable"`
	EffectiveBaseTaxReductionRate *float64           `json:"effectiveBaseTaxReductionRate,omitempty" schema:"nullable"`
	EffectiveBaseTaxAmount        *float64           `json:"effectiveBaseTaxAmount,omitempty" schema:"nullable"`
	EffectiveRate                 *float64           `json:"effectiveRate,omitempty" schema:"nullable"`
	EffectiveAmount               *float64           `json:"effectiveAmount,omitempty" schema:"nullable"`
	DeductionIndicator            DeductionIndicator `json:"deductionIndicator"`
}

type IPITax struct {
	CST                *string  `json:"cst,omitempty" schema:"nullable"`
	ClassificationCode *string  `json:"classificationCode,omitempty" schema:"nullable"`
	Classification     *string  `json:"classification,omitempty" schema:"nullable"`
	ProducerCNPJ       *string  `json:"producerCNPJ,omitempty" schema:"nullable"`
	StampCode          *string  `json:"stampCode,omitempty" schema:"nullable"`
	StampQuantity      *float64 `json:"stampQuantity,omitempty" schema:"nullable"`
	Base               *float64 `json:"base,omitempty" schema:"nullable"`
	Rate               *float64 `json:"rate,omitempty" schema:"nullable"`
	UnitQuantity       *float64 `json:"unitQuantity,omitempty" schema:"nullable"`
	UnitAmount         *float64 `json:"unitAmount,omitempty" schema:"nullable"`
	Amount             *float64 `json:"amount,omitempty" schema:"nullable"`
}

type IITax struct {
	BaseTax                  *string  `json:"baseTax,omitempty" schema:"nullable"`
	CustomsExpenditureAmount *string  `json:"customsExpenditureAmount,omitempty" schema:"nullable"`
	Amount                   *float64 `json:"amount,omitempty" schema:"nullable"`
	IOFAmount                *float64 `json:"iofAmount,omitempty" schema:"nullable"`
	VEnqCamb                 *float64 `json:"vEnqCamb,omitempty" schema:"nullable"`
}

type PISTax struct {
	CST                    *string  `json:"cst,omitempty" schema:"nullable"`
	BaseTax                *float64 `json:"baseTax,omitempty" schema:"nullable"`
	Rate                   *float64 `json:"rate,omitempty" schema:"nullable"`
	Amount                 *float64 `json:"amount,omitempty" schema:"nullable"`
	BaseTaxProductQuantity *float64 `json:"baseTaxProductQuantity,omitempty" schema:"nullable"`
	ProductRate            *float64 `json:"productRate,omitempty" schema:"nullable"`
}

type COFINSTax struct {
	CST                    *string  `json:"cst,omitempty" schema:"nullable"`
	BaseTax                *float64 `json:"baseTax,omitempty" schema:"nullable"`
	Rate                   *float64 `json:"rate,omitempty" schema:"nullable"`
	Amount                 *float64 `json:"amount,omitempty" schema:"nullable"`
	BaseTaxProductQuantity *float64 `json:"baseTaxProductQuantity,omitempty" schema:"nullable"`
	ProductRate            *float64 `json:"productRate,omitempty" schema:"nullable"`
}

type ICMSUFDestinationTax struct {
	VBCUFDest      *float64 `json:"vBCUFDest,omitempty" schema:"nullable"`
	PFCPUFDest     *float64 `json:"pFCPUFDest,omitempty" schema:"nullable"`
	PICMSUFDest    *float64 `json:"pICMSUFDest,omitempty" schema:"nullable"`
	PICMSInter     *float64 `json:"pICMSInter,omitempty" schema:"nullable"`
	PICMSInterPart *float64 `json:"pICMSInterPart,omitempty" schema:"nullable"`
	VFCPUFDest     *float64 `json:"vFCPUFDest,omitempty" schema:"nullable"`
	VICMSUFDest    *float64 `json:"vICMSUFDest,omitempty" schema:"nullable"`
	VICMSUFRemet   *float64 `json:"vICMSUFRemet,omitempty" schema:"nullable"`
	VBCFCPUFDest   *float64 `json:"vBCFCPUFDest,omitempty" schema:"nullable"`
}

// InvoiceItemTax groups the per-item taxes. Each group is present only
// when it applies under the issuer's tax regime.
type InvoiceItemTax struct {
	TotalTax        *float64              `json:"totalTax,omitempty" schema:"nullable"`
	ICMS            *ICMSTax              `json:"icms,omitempty" schema:"nullable"`
	IPI             *IPITax               `json:"ipi,omitempty" schema:"nullable"`
	II              *IITax                `json:"ii,omitempty" schema:"nullable"`
	PIS             *PISTax               `json:"pis,omitempty" schema:"nullable"`
	COFINS          *COFINSTax            `json:"cofins,omitempty" schema:"nullable"`
	ICMSDestination *ICMSUFDestinationTax `json:"icmsDestination,omitempty" schema:"nullable"`
}

// InvoiceItem is one product line.
type InvoiceItem struct {
	Code                     *string               `json:"code,omitempty" schema:"nullable"`
	CodeGTIN                 *string               `json:"codeGTIN,omitempty" schema:"nullable"`
	Description              *string               `json:"description,omitempty" schema:"nullable"`
	NCM                      *string               `json:"ncm,omitempty" schema:"nullable"`
	NVE                      []string              `json:"nve,omitempty" schema:"nullable"`
	EXTIPI                   *string               `json:"extipi,omitempty" schema:"nullable"`
	CFOP                     *float64              `json:"cfop,omitempty" schema:"nullable"`
	Unit                     *string               `json:"unit,omitempty" schema:"nullable"`
	Quantity                 *float64              `json:"quantity,omitempty" schema:"nullable"`
	UnitAmount               *float64              `json:"unitAmount,omitempty" schema:"nullable"`
	TotalAmount              *float64              `json:"totalAmount,omitempty" schema:"nullable"`
	CodeTaxGTIN              *string               `json:"codeTaxGTIN,omitempty" schema:"nullable"`
	UnitTax                  *string               `json:"unitTax,omitempty" schema:"nullable"`
	QuantityTax              *float64              `json:"quantityTax,omitempty" schema:"nullable"`
	TaxUnitAmount            *float64              `json:"taxUnitAmount,omitempty" schema:"nullable"`
	FreightAmount            *float64              `json:"freightAmount,omitempty" schema:"nullable"`
	InsuranceAmount          *float64              `json:"insuranceAmount,omitempty" schema:"nullable"`
	DiscountAmount           *float64              `json:"discountAmount,omitempty" schema:"nullable"`
	OthersAmount             *float64              `json:"othersAmount,omitempty" schema:"nullable"`
	TotalIndicator           *bool                 `json:"totalIndicator,omitempty" schema:"nullable"`
	CEST                     *string               `json:"cest,omitempty" schema:"nullable"`
	Tax                      *InvoiceItemTax       `json:"tax,omitempty" schema:"nullable"`
	AdditionalInformation    *string               `json:"additionalInformation,omitempty" schema:"nullable"`
	NumberOrderBuy           *string               `json:"numberOrderBuy,omitempty" schema:"nullable"`
	ItemNumberOrderBuy       *int64                `json:"itemNumberOrderBuy,omitempty" schema:"nullable"`
	ImportControlSheetNumber *string               `json:"importControlSheetNumber,omitempty" schema:"nullable"`
	FuelDetail               *Fuel                 `json:"fuelDetail,omitempty" schema:"nullable"`
	Benefit                  *string               `json:"benefit,omitempty" schema:"nullable"`
	ImportDeclarations       []ImportDeclaration   `json:"importDeclarations,omitempty" schema:"nullable"`
	ExportDetails            []ExportDetail        `json:"exportDetails,omitempty" schema:"nullable"`
	TaxDetermination         *ItemTaxDetermination `json:"taxDetermination,omitempty" schema:"nullable"`
}

type Bill struct {
	Number         *string  `json:"number,omitempty" schema:"nullable"`
	OriginalAmount *float64 `json:"originalAmount,omitempty" schema:"nullable"`
	DiscountAmount *float64 `json:"discountAmount,omitempty" schema:"nullable"`
	NetAmount      *float64 `json:"netAmount,omitempty" schema:"nullable"`
}

type Duplicate struct {
	Number       *string  `json:"number,omitempty" schema:"nullable"`
	ExpirationOn *string  `json:"expirationOn,omitempty" schema:"nullable,datetime"`
	Amount       *float64 `json:"amount,omitempty" schema:"nullable"`
}

type Billing struct {
	Bill       *Bill       `json:"bill,omitempty" schema:"nullable"`
	Duplicates []Duplicate `json:"duplicates,omitempty" schema:"nullable"`
}

type IssuerFromRequest struct {
	STStateTaxNumber *string `json:"stStateTaxNumber,omitempty" schema:"nullable"`
}

type Intermediate struct {
	FederalTaxNumber *float64 `json:"federalTaxNumber,omitempty" schema:"nullable"`
	Identifier       *string  `json:"identifier,omitempty" schema:"nullable"`
}

type DeliveryInformation struct {
	AccountID        *string       `json:"accountId,omitempty" schema:"nullable"`
	ID               *string       `json:"id,omitempty" schema:"nullable"`
	Name             *string       `json:"name,omitempty" schema:"nullable"`
	FederalTaxNumber *float64      `json:"federalTaxNumber,omitempty" schema:"nullable"`
	Email            *string       `json:"email,omitempty" schema:"nullable"`
	Address          *GoodsAddress `json:"address,omitempty" schema:"nullable"`
	Type             PartyType     `json:"type"`
	StateTaxNumber   *string       `json:"stateTaxNumber,omitempty" schema:"nullable"`
}

type WithdrawalInformation struct {
	AccountID        *string       `json:"accountId,omitempty" schema:"nullable"`
	ID               *string       `json:"id,omitempty" schema:"nullable"`
	Name             *string       `json:"name,omitempty" schema:"nullable"`
	FederalTaxNumber *float64      `json:"federalTaxNumber,omitempty" schema:"nullable"`
	Email            *string       `json:"email,omitempty" schema:"nullable"`
	Address          *GoodsAddress `json:"address,omitempty" schema:"nullable"`
	Type             PartyType     `json:"type"`
	StateTaxNumber   *string       `json:"stateTaxNumber,omitempty" schema:"nullable"`
}

// ICMSTotal totals the invoice; product, invoice and federal tax amounts
// are the only required numbers in the whole document.
type ICMSTotal struct {
	BaseTax                  *float64 `json:"baseTax,omitempty" schema:"nullable"`
	ICMSAmount               *float64 `json:"icmsAmount,omitempty" schema:"nullable"`
	ICMSExemptAmount         *float64 `json:"icmsExemptAmount,omitempty" schema:"nullable"`
	STCalculationBasisAmount *float64 `json:"stCalculationBasisAmount,omitempty" schema:"nullable"`
	STAmount                 *float64 `json:"stAmount,omitempty" schema:"nullable"`
	ProductAmount            float64  `json:"productAmount"`
	FreightAmount            *float64 `json:"freightAmount,omitempty" schema:"nullable"`
	InsuranceAmount          *float64 `json:"insuranceAmount,omitempty" schema:"nullable"`
	DiscountAmount           *float64 `json:"discountAmount,omitempty" schema:"nullable"`
	IIAmount                 *float64 `json:"iiAmount,omitempty" schema:"nullable"`
	IPIAmount                *float64 `json:"ipiAmount,omitempty" schema:"nullable"`
	PISAmount                *float64 `json:"pisAmount,omitempty" schema:"nullable"`
	COFINSAmount             *float64 `json:"cofinsAmount,omitempty" schema:"nullable"`
	OthersAmount             *float64 `json:"othersAmount,omitempty" schema:"nullable"`
	InvoiceAmount            float64  `json:"invoiceAmount"`
	FCPUFDestinationAmount   *float64 `json:"fcpufDestinationAmount,omitempty" schema:"nullable"`
	ICMSUFDestinationAmount  *float64 `json:"icmsufDestinationAmount,omitempty" schema:"nullable"`
	ICMSUFSenderAmount       *float64 `json:"icmsufSenderAmount,omitempty" schema:"nullable"`
	FederalTaxesAmount       float64  `json:"federalTaxesAmount"`
	FCPAmount                *float64 `json:"fcpAmount,omitempty" schema:"nullable"`
	FCPSTAmount              *float64 `json:"fcpstAmount,omitempty" schema:"nullable"`
	FCPSTRetAmount           *float64 `json:"fcpstRetAmount,omitempty" schema:"nullable"`
	IPIDevolAmount           *float64 `json:"ipiDevolAmount,omitempty" schema:"nullable"`
	QBCMono                  *float64 `json:"qBCMono,omitempty" schema:"nullable"`
	VICMSMono                *float64 `json:"vICMSMono,omitempty" schema:"nullable"`
	QBCMonoReten             *float64 `json:"qBCMonoReten,omitempty" schema:"nullable"`
	VICMSMonoReten           *float64 `json:"vICMSMonoReten,omitempty" schema:"nullable"`
	QBCMonoRet               *float64 `json:"qBCMonoRet,omitempty" schema:"nullable"`
	VICMSMonoRet             *float64 `json:"vICMSMonoRet,omitempty" schema:"nullable"`
}

type ISSQNTotal struct {
	TotalServiceNotTaxedICMS *float64 `json:"totalServiceNotTaxedICMS,omitempty" schema:"nullable"`
	BaseRateISS              *float64 `json:"baseRateISS,omitempty" schema:"nullable"`
	TotalISS                 *float64 `json:"totalISS,omitempty" schema:"nullable"`
	ValueServicePIS          *float64 `json:"valueServicePIS,omitempty" schema:"nullable"`
	ValueServiceCOFINS       *float64 `json:"valueServiceCOFINS,omitempty" schema:"nullable"`
	ProvisionService         *string  `json:"provisionService,omitempty" schema:"nullable,datetime"`
	DeductionReductionBC     *float64 `json:"deductionReductionBC,omitempty" schema:"nullable"`
	ValueOtherRetention      *float64 `json:"valueOtherRetention,omitempty" schema:"nullable"`
	DiscountUnconditional    *float64 `json:"discountUnconditional,omitempty" schema:"nullable"`
	DiscountConditioning     *float64 `json:"discountConditioning,omitempty" schema:"nullable"`
	TotalRetentionISS        *float64 `json:"totalRetentionISS,omitempty" schema:"nullable"`
	CodeTaxRegime            *float64 `json:"codeTaxRegime,omitempty" schema:"nullable"`
}

type Totals struct {
	ICMS  *ICMSTotal  `json:"icms,omitempty" schema:"nullable"`
	ISSQN *ISSQNTotal `json:"issqn,omitempty" schema:"nullable"`
}

// ProductInvoice is the NF-e issue resource accepted by the v2 product
// invoice endpoint. Operation enums are required; every other field is
// nullable because it only applies under specific tax situations, and a
// missing amount is never read as zero here.
type ProductInvoice struct {
	ID                       *string                       `json:"id,omitempty" schema:"nullable"`
	Payment                  []Payment                     `json:"payment,omitempty" schema:"nullable"`
	Serie                    *int64                        `json:"serie,omitempty" schema:"nullable"`
	Number                   *int64                        `json:"number,omitempty" schema:"nullable"`
	OperationOn              *string                       `json:"operationOn,omitempty" schema:"nullable,datetime"`
	OperationNature          *string                       `json:"operationNature,omitempty" schema:"nullable"`
	OperationType            OperationType                 `json:"operationType"`
	Destination              Destination                   `json:"destination"`
	PrintType                PrintType                     `json:"printType"`
	PurposeType              PurposeType                   `json:"purposeType"`
	ConsumerType             ConsumerType                  `json:"consumerType"`
	PresenceType             ConsumerPresenceType          `json:"presenceType"`
	ContingencyOn            *string                       `json:"contingencyOn,omitempty" schema:"nullable,datetime"`
	ContingencyJustification *string                       `json:"contingencyJustification,omitempty" schema:"nullable"`
	Buyer                    *Buyer                        `json:"buyer,omitempty" schema:"nullable"`
	Transport                *TransportInformation         `json:"transport,omitempty" schema:"nullable"`
	AdditionalInformation    *InvoiceAdditionalInformation `json:"additionalInformation,omitempty" schema:"nullable"`
	Export                   *ExportInformation            `json:"export,omitempty" schema:"nullable"`
	Items                    []InvoiceItem                 `json:"items,omitempty" schema:"nullable"`
	Billing                  *Billing                      `json:"billing,omitempty" schema:"nullable"`
	Issuer                   *IssuerFromRequest            `json:"issuer,omitempty" schema:"nullable"`
	TransactionIntermediate  *Intermediate                 `json:"transactionIntermediate,omitempty" schema:"nullable"`
	Delivery                 *DeliveryInformation          `json:"delivery,omitempty" schema:"nullable"`
	Withdrawal               *WithdrawalInformation        `json:"withdrawal,omitempty" schema:"nullable"`
	Totals                   *Totals                       `json:"totals,omitempty" schema:"nullable"`
}
