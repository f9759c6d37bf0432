package usecase

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sort"

	appdomain "monderh-backend/internal/application/domain"
	"monderh-backend/internal/application/repository"
	authrepo "monderh-backend/internal/auth/repository"
	googleUsecase "monderh-backend/internal/google/usecase"
	"monderh-backend/pkg/fuzzy"
	"monderh-backend/pkg/mailer"

	"github.com/google/uuid"
)

// applicationUsecase implements ApplicationUsecase
type applicationUsecase struct {
	appRepo   repository.ApplicationRepository
	userRepo  authrepo.UserRepository
	googleUc  googleUsecase.GoogleUsecase
	mail      mailer.Sender
	uploadDir string
}

// NewApplicationUsecase creates a new instance of applicationUsecase
func NewApplicationUsecase(appRepo repository.ApplicationRepository, userRepo authrepo.UserRepository, googleUc googleUsecase.GoogleUsecase, mail mailer.Sender, uploadDir string) ApplicationUsecase {
	return &applicationUsecase{
		appRepo:   appRepo,
		userRepo:  userRepo,
		googleUc:  googleUc,
		mail:      mail,
		uploadDir: uploadDir,
	}
}

func (u *applicationUsecase) Submit(ctx context.Context, in *SubmitInput) (*appdomain.Application, error) {
	if in.Position == "" {
		return nil, errors.New("position is required")
	}
	if !appdomain.ValidServiceType(in.ServiceType) {
		return nil, errors.New("unknown service type")
	}

	app := &appdomain.Application{
		UserID:            in.UserID,
		Position:          in.Position,
		ServiceType:       in.ServiceType,
		CoverLetter:       in.CoverLetter,
		LinkedinURL:       in.LinkedinURL,
		ExperienceYears:   in.ExperienceYears,
		SalaryExpectation: in.SalaryExpectation,
		Availability:      in.Availability,
		Status:            appdomain.StatusPending,
	}

	if len(in.CVContent) > 0 && in.CVFilename != "" {
		stored, err := u.storeCV(in.CVFilename, in.CVContent)
		if err != nil {
			return nil, err
		}
		app.CVFilename = stored

		// Best-effort Drive sync: a failure is logged and the submission
		// proceeds without a remote link.
		if in.UserID != nil {
			result := u.googleUc.UploadCV(ctx, *in.UserID, in.CVContent, in.CVFilename, in.CVContentType)
			if result.OK() {
				app.GoogleDriveLink = &result.Link
			} else if result.Failure != "" && result.Err != nil {
				log.Printf("[WARN] CV drive sync skipped (%s): %v", result.Failure, result.Err)
			}
		}
	}

	if err := u.appRepo.Create(app); err != nil {
		return nil, err
	}

	u.notifyApplicant(app, mailer.ApplicationReceived)

	return app, nil
}

func (u *applicationUsecase) GetByID(id string) (*appdomain.Application, error) {
	app, err := u.appRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, errors.New("application not found")
	}
	return app, nil
}

func (u *applicationUsecase) List(status *appdomain.ApplicationStatus, limit, offset int) ([]*appdomain.Application, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return u.appRepo.FindAll(status, limit, offset)
}

// searchScanCap bounds how many recent applications a search scans
const searchScanCap = 500

func (u *applicationUsecase) Search(query string) ([]*appdomain.Application, error) {
	if query == "" {
		return []*appdomain.Application{}, nil
	}

	apps, _, err := u.appRepo.FindAll(nil, searchScanCap, 0)
	if err != nil {
		return nil, err
	}

	threshold := fuzzy.Threshold(query)
	type scored struct {
		app   *appdomain.Application
		score float64
	}
	var matches []scored
	for _, app := range apps {
		name := ""
		if app.User != nil {
			name = app.User.DisplayName()
		}
		if !fuzzy.Match(query, name, threshold) &&
			!fuzzy.Match(query, app.Position, threshold) &&
			!fuzzy.Match(query, string(app.ServiceType), threshold) {
			continue
		}
		matches = append(matches, scored{
			app:   app,
			score: fuzzy.Score(query, name, app.Position, string(app.ServiceType)),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]*appdomain.Application, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.app)
	}
	return result, nil
}

func (u *applicationUsecase) UpdateStatus(id string, status appdomain.ApplicationStatus, notes string) (*appdomain.Application, error) {
	app, err := u.appRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, errors.New("application not found")
	}

	changed := status != app.Status
	if changed {
		if !appdomain.CanTransition(app.Status, status) {
			return nil, errors.New("invalid status transition")
		}
		app.Status = status
	}
	if notes != "" {
		app.Notes = notes
	}

	if err := u.appRepo.Update(app); err != nil {
		return nil, err
	}

	if !changed {
		return app, nil
	}

	// One notification per transition, when the applicant is known
	switch status {
	case appdomain.StatusReviewed:
		u.notifyApplicant(app, mailer.ApplicationUnderReview)
	case appdomain.StatusAccepted:
		u.notifyApplicant(app, mailer.ApplicationAccepted)
	case appdomain.StatusRejected:
		u.notifyApplicant(app, mailer.ApplicationRejected)
	}

	return app, nil
}

func (u *applicationUsecase) Delete(id string) error {
	return u.appRepo.Delete(id)
}

// storeCV writes the uploaded file under the upload directory with a
// uuid prefix to avoid collisions; returns the stored filename.
func (u *applicationUsecase) storeCV(filename string, content []byte) (string, error) {
	if err := os.MkdirAll(u.uploadDir, 0o755); err != nil {
		return "", err
	}
	stored := uuid.New().String() + "_" + filepath.Base(filename)
	if err := os.WriteFile(filepath.Join(u.uploadDir, stored), content, 0o644); err != nil {
		return "", err
	}
	return stored, nil
}

// notifyApplicant attempts exactly one email; failures are logged only
func (u *applicationUsecase) notifyApplicant(app *appdomain.Application, template func(firstName, position string) (string, string)) {
	if app.UserID == nil {
		return
	}

	user := app.User
	if user == nil {
		var err error
		user, err = u.userRepo.FindByID(*app.UserID)
		if err != nil || user == nil {
			return
		}
	}

	subject, body := template(user.FirstName, app.Position)
	if err := u.mail.Send(user.Email, subject, body); err != nil {
		log.Printf("[WARN] application notification failed: %v", err)
	}
}
