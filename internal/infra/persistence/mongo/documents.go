package mongo

import (
	"time"

	"agency/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Documents store entity ids as canonical uuid strings under _id so the
// opaque id survives a round trip through any backend unchanged.

func parseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "malformed %s in document", field)
	}

	return id, nil
}

type serviceDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Category    string    `bson:"category"`
	Price       int64     `bson:"price"`
	Features    []string  `bson:"features"`
	IsActive    bool      `bson:"is_active"`
	CreatedAt   time.Time `bson:"created_at"`
}

func fromServiceDomain(service *entity.Service) *serviceDocument {
	return &serviceDocument{
		ID:          service.ID.String(),
		Name:        service.Name,
		Description: service.Description,
		Category:    service.Category,
		Price:       service.Price,
		Features:    service.Features,
		IsActive:    service.IsActive,
		CreatedAt:   service.CreatedAt,
	}
}

func (d *serviceDocument) toDomain() (*entity.Service, error) {
	id, err := parseUUID("service id", d.ID)
	if err != nil {
		return nil, err
	}

	return &entity.Service{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		Price:       d.Price,
		Features:    d.Features,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
	}, nil
}

type discountCodeDocument struct {
	ID        string     `bson:"_id"`
	Code      string     `bson:"code"`
	Percent   int        `bson:"percent"`
	IsActive  bool       `bson:"is_active"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
	CreatedAt time.Time  `bson:"created_at"`
}

func fromDiscountCodeDomain(code *entity.DiscountCode) *discountCodeDocument {
	return &discountCodeDocument{
		ID:        code.ID.String(),
		Code:      code.Code,
		Percent:   code.Percent,
		IsActive:  code.IsActive,
		ExpiresAt: code.ExpiresAt,
		CreatedAt: code.CreatedAt,
	}
}

func (d *discountCodeDocument) toDomain() (*entity.DiscountCode, error) {
	id, err := parseUUID("discount code id", d.ID)
	if err != nil {
		return nil, err
	}

	return &entity.DiscountCode{
		ID:        id,
		Code:      d.Code,
		Percent:   d.Percent,
		IsActive:  d.IsActive,
		ExpiresAt: d.ExpiresAt,
		CreatedAt: d.CreatedAt,
	}, nil
}

type orderDocument struct {
	ID            string    `bson:"_id"`
	OrderNumber   string    `bson:"order_number"`
	CustomerName  string    `bson:"customer_name"`
	CustomerEmail string    `bson:"customer_email"`
	CustomerPhone string    `bson:"customer_phone"`
	ServiceID     string    `bson:"service_id,omitempty"`
	ServiceName   string    `bson:"service_name"`
	Price         int64     `bson:"price"`
	Status        string    `bson:"status"`
	PaymentStatus string    `bson:"payment_status"`
	PaymentMethod string    `bson:"payment_method"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func fromOrderDomain(order *entity.Order) *orderDocument {
	doc := &orderDocument{
		ID:            order.ID.String(),
		OrderNumber:   order.OrderNumber,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		ServiceName:   order.ServiceName,
		Price:         order.Price,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		PaymentMethod: order.PaymentMethod,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
	if order.Service.Valid {
		doc.ServiceID = order.Service.ID.String()
	}

	return doc
}

func (d *orderDocument) toDomain() (*entity.Order, error) {
	id, err := parseUUID("order id", d.ID)
	if err != nil {
		return nil, err
	}

	serviceRef := entity.MissingServiceRef()
	if d.ServiceID != "" {
		serviceID, err := parseUUID("order service id", d.ServiceID)
		if err != nil {
			return nil, err
		}
		serviceRef = entity.ServiceRef{ID: serviceID, Valid: true}
	}

	return &entity.Order{
		ID:            id,
		OrderNumber:   d.OrderNumber,
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		CustomerPhone: d.CustomerPhone,
		Service:       serviceRef,
		ServiceName:   d.ServiceName,
		Price:         d.Price,
		Status:        entity.OrderStatus(d.Status),
		PaymentStatus: entity.PaymentStatus(d.PaymentStatus),
		PaymentMethod: d.PaymentMethod,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}, nil
}

type invoiceDocument struct {
	ID            string    `bson:"_id"`
	InvoiceNumber string    `bson:"invoice_number"`
	OrderID       string    `bson:"order_id"`
	CustomerName  string    `bson:"customer_name"`
	CustomerEmail string    `bson:"customer_email"`
	ServiceName   string    `bson:"service_name"`
	Amount        int64     `bson:"amount"`
	IssuedAt      time.Time `bson:"issued_at"`
}

func fromInvoiceDomain(invoice *entity.Invoice) *invoiceDocument {
	return &invoiceDocument{
		ID:            invoice.ID.String(),
		InvoiceNumber: invoice.InvoiceNumber,
		OrderID:       invoice.OrderID.String(),
		CustomerName:  invoice.CustomerName,
		CustomerEmail: invoice.CustomerEmail,
		ServiceName:   invoice.ServiceName,
		Amount:        invoice.Amount,
		IssuedAt:      invoice.IssuedAt,
	}
}

func (d *invoiceDocument) toDomain() (*entity.Invoice, error) {
	id, err := parseUUID("invoice id", d.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := parseUUID("invoice order id", d.OrderID)
	if err != nil {
		return nil, err
	}

	return &entity.Invoice{
		ID:            id,
		InvoiceNumber: d.InvoiceNumber,
		OrderID:       orderID,
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		ServiceName:   d.ServiceName,
		Amount:        d.Amount,
		IssuedAt:      d.IssuedAt,
	}, nil
}

type accountDocument struct {
	ID           string    `bson:"_id"`
	Role         string    `bson:"role"`
	Email        string    `bson:"email"`
	Name         string    `bson:"name"`
	Phone        string    `bson:"phone"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

func fromAccountDomain(account *entity.Account) *accountDocument {
	return &accountDocument{
		ID:           account.ID.String(),
		Role:         string(account.Role),
		Email:        account.Email,
		Name:         account.Name,
		Phone:        account.Phone,
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt,
	}
}

func (d *accountDocument) toDomain() (*entity.Account, error) {
	id, err := parseUUID("account id", d.ID)
	if err != nil {
		return nil, err
	}

	return &entity.Account{
		ID:           id,
		Role:         entity.Role(d.Role),
		Email:        d.Email,
		Name:         d.Name,
		Phone:        d.Phone,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}, nil
}

type sessionDocument struct {
	ID        string    `bson:"_id"`
	AccountID string    `bson:"account_id"`
	Role      string    `bson:"role"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

func fromSessionDomain(session *entity.Session) *sessionDocument {
	return &sessionDocument{
		ID:        session.ID.String(),
		AccountID: session.AccountID.String(),
		Role:      string(session.Role),
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}
}

func (d *sessionDocument) toDomain() (*entity.Session, error) {
	id, err := parseUUID("session id", d.ID)
	if err != nil {
		return nil, err
	}
	accountID, err := parseUUID("session account id", d.AccountID)
	if err != nil {
		return nil, err
	}

	return &entity.Session{
		ID:        id,
		AccountID: accountID,
		Role:      entity.Role(d.Role),
		CreatedAt: d.CreatedAt,
		ExpiresAt: d.ExpiresAt,
	}, nil
}

type projectDocument struct {
	ID            string    `bson:"_id"`
	ClientID      string    `bson:"client_id"`
	Name          string    `bson:"name"`
	Description   string    `bson:"description"`
	Status        string    `bson:"status"`
	DaysRemaining int       `bson:"days_remaining"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func fromProjectDomain(project *entity.Project) *projectDocument {
	return &projectDocument{
		ID:            project.ID.String(),
		ClientID:      project.ClientID.String(),
		Name:          project.Name,
		Description:   project.Description,
		Status:        string(project.Status),
		DaysRemaining: project.DaysRemaining,
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
	}
}

func (d *projectDocument) toDomain() (*entity.Project, error) {
	id, err := parseUUID("project id", d.ID)
	if err != nil {
		return nil, err
	}
	clientID, err := parseUUID("project client id", d.ClientID)
	if err != nil {
		return nil, err
	}

	return &entity.Project{
		ID:            id,
		ClientID:      clientID,
		Name:          d.Name,
		Description:   d.Description,
		Status:        entity.ProjectStatus(d.Status),
		DaysRemaining: d.DaysRemaining,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}, nil
}

type taskDocument struct {
	ID             string    `bson:"_id"`
	EmployeeID     string    `bson:"employee_id"`
	ProjectID      string    `bson:"project_id"`
	Title          string    `bson:"title"`
	Completed      bool      `bson:"completed"`
	HoursRemaining int       `bson:"hours_remaining"`
	CreatedAt      time.Time `bson:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

func fromTaskDomain(task *entity.EmployeeTask) *taskDocument {
	return &taskDocument{
		ID:             task.ID.String(),
		EmployeeID:     task.EmployeeID.String(),
		ProjectID:      task.ProjectID.String(),
		Title:          task.Title,
		Completed:      task.Completed,
		HoursRemaining: task.HoursRemaining,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
}

func (d *taskDocument) toDomain() (*entity.EmployeeTask, error) {
	id, err := parseUUID("task id", d.ID)
	if err != nil {
		return nil, err
	}
	employeeID, err := parseUUID("task employee id", d.EmployeeID)
	if err != nil {
		return nil, err
	}
	projectID, err := parseUUID("task project id", d.ProjectID)
	if err != nil {
		return nil, err
	}

	return &entity.EmployeeTask{
		ID:             id,
		EmployeeID:     employeeID,
		ProjectID:      projectID,
		Title:          d.Title,
		Completed:      d.Completed,
		HoursRemaining: d.HoursRemaining,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}, nil
}

type courseDocument struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	Price       int64     `bson:"price"`
	IsActive    bool      `bson:"is_active"`
	CreatedAt   time.Time `bson:"created_at"`
}

func fromCourseDomain(course *entity.Course) *courseDocument {
	return &courseDocument{
		ID:          course.ID.String(),
		Title:       course.Title,
		Description: course.Description,
		Price:       course.Price,
		IsActive:    course.IsActive,
		CreatedAt:   course.CreatedAt,
	}
}

func (d *courseDocument) toDomain() (*entity.Course, error) {
	id, err := parseUUID("course id", d.ID)
	if err != nil {
		return nil, err
	}

	return &entity.Course{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
	}, nil
}

type enrollmentDocument struct {
	ID         string    `bson:"_id"`
	StudentID  string    `bson:"student_id"`
	CourseID   string    `bson:"course_id"`
	Progress   int       `bson:"progress"`
	EnrolledAt time.Time `bson:"enrolled_at"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

func fromEnrollmentDomain(enrollment *entity.Enrollment) *enrollmentDocument {
	return &enrollmentDocument{
		ID:         enrollment.ID.String(),
		StudentID:  enrollment.StudentID.String(),
		CourseID:   enrollment.CourseID.String(),
		Progress:   enrollment.Progress,
		EnrolledAt: enrollment.EnrolledAt,
		UpdatedAt:  enrollment.UpdatedAt,
	}
}

func (d *enrollmentDocument) toDomain() (*entity.Enrollment, error) {
	id, err := parseUUID("enrollment id", d.ID)
	if err != nil {
		return nil, err
	}
	studentID, err := parseUUID("enrollment student id", d.StudentID)
	if err != nil {
		return nil, err
	}
	courseID, err := parseUUID("enrollment course id", d.CourseID)
	if err != nil {
		return nil, err
	}

	return &entity.Enrollment{
		ID:         id,
		StudentID:  studentID,
		CourseID:   courseID,
		Progress:   d.Progress,
		EnrolledAt: d.EnrolledAt,
		UpdatedAt:  d.UpdatedAt,
	}, nil
}

type lessonProgressDocument struct {
	ID           string    `bson:"_id"`
	EnrollmentID string    `bson:"enrollment_id"`
	LessonID     string    `bson:"lesson_id"`
	CompletedAt  time.Time `bson:"completed_at"`
}

func fromLessonProgressDomain(progress *entity.LessonProgress) *lessonProgressDocument {
	return &lessonProgressDocument{
		ID:           progress.ID.String(),
		EnrollmentID: progress.EnrollmentID.String(),
		LessonID:     progress.LessonID,
		CompletedAt:  progress.CompletedAt,
	}
}

func (d *lessonProgressDocument) toDomain() (*entity.LessonProgress, error) {
	id, err := parseUUID("lesson progress id", d.ID)
	if err != nil {
		return nil, err
	}
	enrollmentID, err := parseUUID("lesson progress enrollment id", d.EnrollmentID)
	if err != nil {
		return nil, err
	}

	return &entity.LessonProgress{
		ID:           id,
		EnrollmentID: enrollmentID,
		LessonID:     d.LessonID,
		CompletedAt:  d.CompletedAt,
	}, nil
}

type quizAttemptDocument struct {
	ID           string    `bson:"_id"`
	EnrollmentID string    `bson:"enrollment_id"`
	QuizID       string    `bson:"quiz_id"`
	Score        int       `bson:"score"`
	AttemptedAt  time.Time `bson:"attempted_at"`
}

func fromQuizAttemptDomain(attempt *entity.QuizAttempt) *quizAttemptDocument {
	return &quizAttemptDocument{
		ID:           attempt.ID.String(),
		EnrollmentID: attempt.EnrollmentID.String(),
		QuizID:       attempt.QuizID,
		Score:        attempt.Score,
		AttemptedAt:  attempt.AttemptedAt,
	}
}

func (d *quizAttemptDocument) toDomain() (*entity.QuizAttempt, error) {
	id, err := parseUUID("quiz attempt id", d.ID)
	if err != nil {
		return nil, err
	}
	enrollmentID, err := parseUUID("quiz attempt enrollment id", d.EnrollmentID)
	if err != nil {
		return nil, err
	}

	return &entity.QuizAttempt{
		ID:           id,
		EnrollmentID: enrollmentID,
		QuizID:       d.QuizID,
		Score:        d.Score,
		AttemptedAt:  d.AttemptedAt,
	}, nil
}

type certificateDocument struct {
	ID                string    `bson:"_id"`
	CertificateNumber string    `bson:"certificate_number"`
	EnrollmentID      string    `bson:"enrollment_id"`
	ApprovedBy        string    `bson:"approved_by"`
	QRCodePNG         []byte    `bson:"qr_code_png,omitempty"`
	IssuedAt          time.Time `bson:"issued_at"`
}

func fromCertificateDomain(cert *entity.Certificate) *certificateDocument {
	return &certificateDocument{
		ID:                cert.ID.String(),
		CertificateNumber: cert.CertificateNumber,
		EnrollmentID:      cert.EnrollmentID.String(),
		ApprovedBy:        cert.ApprovedBy.String(),
		QRCodePNG:         cert.QRCodePNG,
		IssuedAt:          cert.IssuedAt,
	}
}

func (d *certificateDocument) toDomain() (*entity.Certificate, error) {
	id, err := parseUUID("certificate id", d.ID)
	if err != nil {
		return nil, err
	}
	enrollmentID, err := parseUUID("certificate enrollment id", d.EnrollmentID)
	if err != nil {
		return nil, err
	}
	approvedBy, err := parseUUID("certificate approver id", d.ApprovedBy)
	if err != nil {
		return nil, err
	}

	return &entity.Certificate{
		ID:                id,
		CertificateNumber: d.CertificateNumber,
		EnrollmentID:      enrollmentID,
		ApprovedBy:        approvedBy,
		QRCodePNG:         d.QRCodePNG,
		IssuedAt:          d.IssuedAt,
	}, nil
}
