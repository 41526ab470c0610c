package schema

// ---- company/v2 ----

// CompanyTaxRegime is the v2 (camelCase) tax regime set.
type CompanyTaxRegime string

func (CompanyTaxRegime) Values() []string {
	return []string{
		"isento",
		"microempreendedorIndividual",
		"simplesNacional",
		"lucroPresumido",
		"lucroReal",
		"none",
	}
}

// CompanyV2Body is the request body for the v2 company resources.
type CompanyV2Body struct {
	Company CompanyV2 `json:"company"`
}

type CompanyV2 struct {
	Name             string            `json:"name"`
	AccountID        *string           `json:"accountId,omitempty" schema:"optional"`
	TradeName        string            `json:"tradeName"`
	FederalTaxNumber int64             `json:"federalTaxNumber"`
	TaxRegime        *CompanyTaxRegime `json:"taxRegime,omitempty" schema:"optional"`
	Address          CompanyV2Address  `json:"address"`
}

type CompanyV2Address struct {
	State                 string  `json:"state"` // ISO 3166-2 alpha-2, e.g. SP
	City                  City    `json:"city"`
	District              string  `json:"district"`
	AdditionalInformation *string `json:"additionalInformation,omitempty" schema:"optional"`
	Street                string  `json:"street"`
	Number                string  `json:"number"` // "S/N" when there is none
	PostalCode            string  `json:"postalCode"`
	Country               string  `json:"country"` // ISO 3166-1 alpha-3, e.g. BRA
}

// City is an IBGE municipality reference.
type City struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ---- company/v1 ----

// TaxRegime is the vendor's PascalCase tax regime set used by v1 companies
// and service-invoice providers.
type TaxRegime string

func (TaxRegime) Values() []string {
	return []string{"Isento", "MicroempreendedorIndividual", "SimplesNacional", "LucroPresumido", "LucroReal"}
}

type SpecialTaxRegime string

func (SpecialTaxRegime) Values() []string {
	return []string{
		"Automatico",
		"Nenhum",
		"MicroempresaMunicipal",
		"Estimativa",
		"SociedadeDeProfissionais",
		"Cooperativa",
		"MicroempreendedorIndividual",
		"MicroempresarioEmpresaPequenoPorte",
	}
}

// LegalNature is the legal entity type of a company.
type LegalNature string

func (LegalNature) Values() []string { return legalNatures }

var legalNatures = []string{
	"EmpresaPublica",
	"SociedadeEconomiaMista",
	"SociedadeAnonimaAberta",
	"SociedadeAnonimaFechada",
	"SociedadeEmpresariaLimitada",
	"SociedadeEmpresariaEmNomeColetivo",
	"SociedadeEmpresariaEmComanditaSimples",
	"SociedadeEmpresariaEmComanditaporAcoes",
	"SociedadeemContaParticipacao",
	"Empresario",
	"Cooperativa",
	"ConsorcioSociedades",
	"GrupoSociedades",
	"EmpresaDomiciliadaExterior",
	"ClubeFundoInvestimento",
	"SociedadeSimplesPura",
	"SociedadeSimplesLimitada",
	"SociedadeSimplesEmNomeColetivo",
	"SociedadeSimplesEmComanditaSimples",
	"EmpresaBinacional",
	"ConsorcioEmpregadores",
	"ConsorcioSimples",
	"EireliNaturezaEmpresaria",
	"EireliNaturezaSimples",
	"ServicoNotarial",
	"FundacaoPrivada",
	"ServicoSocialAutonomo",
	"CondominioEdilicio",
	"ComissaoConciliacaoPrevia",
	"EntidadeMediacaoArbitragem",
	"PartidoPolitico",
	"EntidadeSindical",
	"EstabelecimentoBrasilFundacaoAssociacaoEstrangeiras",
	"FundacaoAssociacaoDomiciliadaExterior",
	"OrganizacaoReligiosa",
	"ComunidadeIndigena",
	"FundoPrivado",
	"AssociacaoPrivada",
}

type ActivityType string

func (ActivityType) Values() []string { return []string{"Main", "Secondary"} }

type Environment string

func (Environment) Values() []string { return []string{"Development", "Production", "Staging"} }

type FiscalStatus string

func (FiscalStatus) Values() []string {
	return []string{"CityNotSupported", "Pending", "Inactive", "None", "Active"}
}

type TaxDetermination string

func (TaxDetermination) Values() []string { return []string{"NotInformed", "Default", "SimplesNacional"} }

type CertificateStatus string

func (CertificateStatus) Values() []string { return []string{"Overdue", "Pending", "None", "Active"} }

// EconomicActivity is a CNAE entry.
type EconomicActivity struct {
	Type ActivityType `json:"type"`
	Code float64      `json:"code"`
}

// CompanyV1 is the vendor's v1 company resource as accepted on create and
// update.
type CompanyV1 struct {
	ID                        *string            `json:"id,omitempty" schema:"optional"`
	Name                      string             `json:"name"`
	TradeName                 *string            `json:"tradeName,omitempty" schema:"optional"`
	FederalTaxNumber          float64            `json:"federalTaxNumber"`
	Email                     string             `json:"email" schema:"email"`
	Address                   CompanyV1Address   `json:"address"`
	OpenningDate              string             `json:"openningDate"`
	TaxRegime                 TaxRegime          `json:"taxRegime"`
	SpecialTaxRegime          *SpecialTaxRegime  `json:"specialTaxRegime,omitempty" schema:"optional"`
	LegalNature               LegalNature        `json:"legalNature"`
	EconomicActivities        []EconomicActivity `json:"economicActivities,omitempty" schema:"optional"`
	CompanyRegistryNumber     *float64           `json:"companyRegistryNumber,omitempty" schema:"optional"`
	RegionalTaxNumber         *float64           `json:"regionalTaxNumber,omitempty" schema:"optional"`
	MunicipalTaxNumber        string             `json:"municipalTaxNumber"`
	RpsSerialNumber           *string            `json:"rpsSerialNumber,omitempty" schema:"optional"`
	RpsNumber                 *float64           `json:"rpsNumber,omitempty" schema:"optional"`
	IssRate                   *float64           `json:"issRate,omitempty" schema:"optional"`
	Environment               *Environment       `json:"environment,omitempty" schema:"optional"`
	FiscalStatus              *FiscalStatus      `json:"fiscalStatus,omitempty" schema:"optional"`
	FederalTaxDetermination   *TaxDetermination  `json:"federalTaxDetermination,omitempty" schema:"optional"`
	MunicipalTaxDetermination *TaxDetermination  `json:"municipalTaxDetermination,omitempty" schema:"optional"`
	LoginName                 *string            `json:"loginName,omitempty" schema:"optional"`
	LoginPassword             *string            `json:"loginPassword,omitempty" schema:"optional"`
	AuthIssueValue            *string            `json:"authIssueValue,omitempty" schema:"optional"`
	Certificate               *Certificate       `json:"certificate,omitempty" schema:"optional"`
	CreatedOn                 *string            `json:"createdOn,omitempty" schema:"optional"`
	ModifiedOn                *string            `json:"modifiedOn,omitempty" schema:"optional"`
}

type CompanyV1Address struct {
	Country               string         `json:"country"`
	PostalCode            *string        `json:"postalCode,omitempty" schema:"optional"`
	Street                string         `json:"street"`
	Number                string         `json:"number"`
	AdditionalInformation *string        `json:"additionalInformation,omitempty" schema:"optional"`
	District              *string        `json:"district,omitempty" schema:"optional"`
	City                  *CompanyV1City `json:"city,omitempty" schema:"optional"`
	State                 string         `json:"state"`
}

// CompanyV1City carries the IBGE code as a number, unlike v2.
type CompanyV1City struct {
	Name *string  `json:"name,omitempty" schema:"optional"`
	Code *float64 `json:"code,omitempty" schema:"optional"`
}

// Certificate is the digital certificate summary attached to a company.
type Certificate struct {
	Thumbprint string            `json:"thumbprint"`
	ModifiedOn string            `json:"modifiedOn"`
	ExpiresOn  string            `json:"expiresOn"`
	Status     CertificateStatus `json:"status"`
}
