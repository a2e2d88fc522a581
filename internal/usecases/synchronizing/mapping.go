package synchronizing

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	legacydomain "github.com/vfg2006/sales-sync-api/infrastructure/integrator/legacy/domain"
	"github.com/vfg2006/sales-sync-api/internal/domain"
	"github.com/vfg2006/sales-sync-api/internal/observation"
	"github.com/vfg2006/sales-sync-api/pkg/utils"
)

var errMalformedRecord = errors.New("registro malformado")

// formatos de data já vistos nas respostas do legado
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"02/01/2006",
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return domain.DateOnly(date), nil
		}
	}
	return time.Time{}, errors.Wrapf(errMalformedRecord, "data inválida %q", value)
}

// parseAmount aceita ponto ou vírgula decimal; com os dois presentes o ponto é separador de milhar
func parseAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if strings.Contains(value, ",") {
		value = strings.ReplaceAll(value, ".", "")
		value = strings.ReplaceAll(value, ",", ".")
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, errors.Wrapf(errMalformedRecord, "valor inválido %q", value)
	}
	return amount, nil
}

// parseFlag lê os indicadores S/N do legado. Vazio conta como ativo.
func parseFlag(value string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "", "S", "SIM", "1", "T", "TRUE", "A":
		return true, nil
	case "N", "NAO", "NÃO", "0", "F", "FALSE", "I":
		return false, nil
	}
	return false, errors.Wrapf(errMalformedRecord, "indicador inválido %q", value)
}

func optional(value legacydomain.Text) *string {
	text := value.String()
	if text == "" {
		return nil
	}
	return &text
}

func required(fields map[string]legacydomain.Text) error {
	for name, value := range fields {
		if value.String() == "" {
			return errors.Wrapf(errMalformedRecord, "campo %s vazio", name)
		}
	}
	return nil
}

func saleKeyOf(item legacydomain.SaleItem) domain.SaleKey {
	return domain.SaleKey{
		SaleCode:       item.SaleCode.String(),
		ProductRefCode: item.ProductRefCode.String(),
		ItemSequence:   item.ItemSequence.String(),
	}
}

func mapSale(item legacydomain.SaleItem) (*domain.SaleRecord, error) {
	err := required(map[string]legacydomain.Text{
		"codigo_venda":       item.SaleCode,
		"referencia_produto": item.ProductRefCode,
		"sequencia_item":     item.ItemSequence,
		"codigo_loja":        item.StoreCode,
	})
	if err != nil {
		return nil, err
	}

	saleDate, err := parseDate(item.SaleDate.String())
	if err != nil {
		return nil, err
	}

	quantity, err := parseAmount(item.Quantity.String())
	if err != nil {
		return nil, err
	}

	unitPrice, err := parseAmount(item.UnitPrice.String())
	if err != nil {
		return nil, err
	}

	totalPrice, err := parseAmount(item.TotalPrice.String())
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id")
	}

	return &domain.SaleRecord{
		ID:             id,
		SaleCode:       item.SaleCode.String(),
		ItemSequence:   item.ItemSequence.String(),
		StoreCode:      item.StoreCode.String(),
		EmployeeCode:   item.EmployeeCode.String(),
		ProductRefCode: item.ProductRefCode.String(),
		OriginCode:     item.OriginCode.String(),
		OperationCode:  item.OperationCode.String(),
		SaleDate:       saleDate,
		Quantity:       quantity,
		UnitPrice:      unitPrice,
		TotalPrice:     totalPrice,
	}, nil
}

func productKeyOf(product legacydomain.Product) string {
	return product.ProductRefCode.String()
}

func mapProduct(product legacydomain.Product) (*domain.Product, error) {
	if err := required(map[string]legacydomain.Text{"referencia": product.ProductRefCode}); err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id")
	}

	return &domain.Product{
		ID:             id,
		ProductRefCode: product.ProductRefCode.String(),
		ProductCode:    product.ProductCode.String(),
		Section:        product.Section.String(),
		Group:          product.Group.String(),
		Subgroup:       product.Subgroup.String(),
		Brand:          product.Brand.String(),
		Description:    product.Description.String(),
	}, nil
}

// parsedExchange carrega o vínculo extraído da observação antes da classificação
type parsedExchange struct {
	document legacydomain.ExchangeDocument
	linkage  observation.Linkage
}

func exchangeKeyOf(exchange parsedExchange) domain.ExchangeKey {
	return domain.ExchangeKey{
		DocumentCode: exchange.document.DocumentCode.String(),
		StoreCode:    exchange.document.StoreCode.String(),
	}
}

func mapExchange(exchange parsedExchange) (*domain.ExchangeRecord, error) {
	document := exchange.document
	err := required(map[string]legacydomain.Text{
		"codigo_documento": document.DocumentCode,
		"codigo_loja":      document.StoreCode,
	})
	if err != nil {
		return nil, err
	}

	issueDate, err := parseDate(document.IssueDate.String())
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id")
	}

	return &domain.ExchangeRecord{
		ID:             id,
		DocumentCode:   document.DocumentCode.String(),
		StoreCode:      document.StoreCode.String(),
		OperationCode:  document.OperationCode.String(),
		OriginCode:     document.OriginCode.String(),
		EmployeeCode:   document.EmployeeCode.String(),
		DocumentNumber: document.DocumentNumber.String(),
		NfeKey:         optional(document.NfeKey),
		IssueDate:      issueDate,
		Observation:    document.Observation.String(),
		NewSaleNumber:  exchange.linkage.NewSaleNumber,
		NewSaleNfeKey:  exchange.linkage.NewSaleNfeKey,
	}, nil
}

func collaboratorKeyOf(collaborator legacydomain.Collaborator) domain.CollaboratorKey {
	return domain.CollaboratorKey{
		EmployeeCode: collaborator.EmployeeCode.String(),
		StoreCode:    collaborator.StoreCode.String(),
	}
}

func mapCollaborator(collaborator legacydomain.Collaborator) (*domain.Collaborator, error) {
	err := required(map[string]legacydomain.Text{
		"codigo_funcionario": collaborator.EmployeeCode,
		"codigo_loja":        collaborator.StoreCode,
	})
	if err != nil {
		return nil, err
	}

	active, err := parseFlag(collaborator.Active.String())
	if err != nil {
		return nil, err
	}

	var admissionDate *time.Time
	if collaborator.AdmissionDate.String() != "" {
		date, err := parseDate(collaborator.AdmissionDate.String())
		if err != nil {
			return nil, err
		}
		admissionDate = &date
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id")
	}

	return &domain.Collaborator{
		ID:              id,
		EmployeeCode:    collaborator.EmployeeCode.String(),
		StoreCode:       collaborator.StoreCode.String(),
		Name:            collaborator.Name.String(),
		JobPositionCode: collaborator.JobPositionCode.String(),
		Document:        collaborator.Document.String(),
		Active:          active,
		AdmissionDate:   admissionDate,
	}, nil
}

func storeKeyOf(store legacydomain.Store) string {
	return store.Code.String()
}

func mapStore(store legacydomain.Store) (*domain.Store, error) {
	if err := required(map[string]legacydomain.Text{"codigo": store.Code}); err != nil {
		return nil, err
	}

	active, err := parseFlag(store.Active.String())
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id")
	}

	return &domain.Store{
		ID:     id,
		Code:   store.Code.String(),
		Name:   store.Name.String(),
		Active: active,
	}, nil
}
