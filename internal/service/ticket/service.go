package ticket

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/m04kA/IRP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/IRP-BookingService/internal/infra/storage/booking"
)

// Service сервис генерации PDF билетов для бронирований
type Service struct {
	bookingRepo BookingRepository
	userRepo    UserRepository
	configRepo  EventConfigRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса билетов
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	configRepo EventConfigRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		configRepo:  configRepo,
		logger:      logger,
	}
}

// Generate формирует PDF билет для бронирования
// Билет доступен только владельцу бронирования
func (s *Service) Generate(ctx context.Context, bookingID, requesterID string) ([]byte, error) {
	s.logger.Info("Ticket: generating for booking=%s, requester=%s", bookingID, requesterID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Ticket: booking=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Ticket: repository error for booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Generate - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != requesterID {
		s.logger.Warn("Ticket: requester=%s is not the owner of booking=%s", requesterID, bookingID)
		return nil, ErrAccessDenied
	}

	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("Ticket: failed to load user=%s: %v", booking.UserID, err)
		return nil, fmt.Errorf("%w: Generate - load user: %v", ErrInternal, err)
	}

	title := "Project Review"
	if cfg, err := s.configRepo.Get(ctx); err == nil && cfg.Title != "" {
		title = cfg.Title
	}

	pdf, err := s.render(title, booking, user)
	if err != nil {
		s.logger.Error("Ticket: render failed for booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Generate - render: %v", ErrInternal, err)
	}

	s.logger.Info("Ticket: generated %d bytes for booking=%s", len(pdf), bookingID)
	return pdf, nil
}

// render собирает PDF: шапка мероприятия, данные команды, QR-код для проверки на входе
func (s *Service) render(title string, booking *domain.Booking, user *domain.User) ([]byte, error) {
	qrData := fmt.Sprintf("booking=%s&slot=%s&roll=%s", booking.ID, booking.SlotID, user.RollNo)
	qrPNG, err := qrcode.Encode(qrData, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %v", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Шапка
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, "Review Slot Ticket", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	// Данные команды и слота
	projectName := ""
	if user.ProjectName != nil {
		projectName = *user.ProjectName
	}
	teamLead := user.Name
	if user.TeamLeadName != nil && *user.TeamLeadName != "" {
		teamLead = *user.TeamLeadName
	}

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(120, 9, fmt.Sprintf(
		"Project: %s\nTeam Lead: %s\nRoll No: %s\nDepartment: %s\nDate: %s\nTime: %s\nBooking ID: %s",
		projectName,
		teamLead,
		user.RollNo,
		user.Department,
		booking.SlotDate.Format("02 Jan 2006"),
		booking.SlotTime,
		booking.ID,
	), "", "L", false)

	// QR-код
	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 55, 40, 40, false, imgOpts, 0, "")

	// Состав команды
	if len(user.TeamMembers) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 9, "Team Members", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		for _, member := range user.TeamMembers {
			pdf.CellFormat(0, 7, fmt.Sprintf("%s (%s, %s, %s)",
				member.Name, member.RollNo, member.Department, member.Year), "", 1, "L", false, 0, "")
		}
	}

	// Подвал
	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, fmt.Sprintf("Issued %s. Show this ticket at the review desk.",
		time.Now().Format("02 Jan 2006 15:04")), "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %v", err)
	}

	return buf.Bytes(), nil
}
