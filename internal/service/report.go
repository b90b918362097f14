package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type reportService struct {
	settlementRepo repository.SettlementRepository
	loanRepo       repository.LoanRepository
	clientRepo     repository.ClientRepository
	prodRepo       repository.ProductRepository
}

func NewReportService(
	settlementRepo repository.SettlementRepository,
	loanRepo repository.LoanRepository,
	clientRepo repository.ClientRepository,
	prodRepo repository.ProductRepository,
) ReportService {
	return &reportService{
		settlementRepo: settlementRepo,
		loanRepo:       loanRepo,
		clientRepo:     clientRepo,
		prodRepo:       prodRepo,
	}
}

func (s *reportService) CollectionReport(ctx context.Context, clientID int32, from, to time.Time) (*CollectionReport, error) {
	events, err := s.settlementRepo.ListEvents(ctx, repository.EventFilter{ClientID: clientID, From: from, To: to})
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, ev := range events {
		if ev.Kind == domain.EventKindCollection {
			total = total.Add(ev.Amount)
		}
	}
	return &CollectionReport{Events: events, TotalCollected: total, From: from, To: to}, nil
}

func (s *reportService) ExportCollectionsCSV(ctx context.Context, clientID int32, from, to time.Time) ([]byte, error) {
	report, err := s.CollectionReport(ctx, clientID, from, to)
	if err != nil {
		return nil, err
	}
	clients, err := s.clientNames(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productNames(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "date", "kind", "client", "product", "quantity", "amount", "actor"})
	for _, ev := range report.Events {
		_ = w.Write([]string{
			strconv.Itoa(int(ev.ID)),
			ev.CreatedOn.Format("2006-01-02 15:04:05"),
			string(ev.Kind),
			clients[ev.ClientID],
			products[ev.ProductID],
			strconv.Itoa(int(ev.Quantity)),
			ev.Amount.StringFixed(2),
			ev.Actor,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ClientStatement composes the plain-text statement the operator forwards to
// the client over chat. The receipt is in Spanish because that is what the
// clients read; it is a projection only, nothing here mutates the ledger.
func (s *reportService) ClientStatement(ctx context.Context, clientID int32) (string, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return "", err
	}
	loans, err := s.loanRepo.ListByClient(ctx, clientID, true)
	if err != nil {
		return "", err
	}
	products, err := s.productNames(ctx)
	if err != nil {
		return "", err
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "*GRUPO KORIEL* - Estado de Cuenta\n")
	fmt.Fprintf(&b, "Cliente: %s", client.Name)
	if client.StoreName != "" {
		fmt.Fprintf(&b, " (%s)", client.StoreName)
	}
	fmt.Fprintf(&b, "\nFecha: %s\n\n", time.Now().Format("2006-01-02"))

	if len(loans) == 0 {
		fmt.Fprintf(&b, "Sin saldo pendiente. Todo al dia.\n")
		return b.String(), nil
	}

	total := decimal.Zero
	for _, loan := range loans {
		name := products[loan.ProductID]
		if name == "" {
			name = fmt.Sprintf("producto #%d", loan.ProductID)
		}
		fmt.Fprintf(&b, "- %s x%d @ $%s = $%s\n",
			name, loan.PendingQuantity, loan.UnitPrice.StringFixed(2), loan.PendingTotal.StringFixed(2))
		total = total.Add(loan.PendingTotal)
	}
	fmt.Fprintf(&b, "\nTOTAL PENDIENTE: $%s\n", total.StringFixed(2))
	return b.String(), nil
}

func (s *reportService) clientNames(ctx context.Context) (map[int32]string, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int32]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (s *reportService) productNames(ctx context.Context) (map[int32]string, error) {
	products, err := s.prodRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int32]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names, nil
}
