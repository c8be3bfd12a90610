package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"archivo/internal/authz"
	"archivo/internal/export"
	"archivo/internal/grid"
	"archivo/internal/model"
	"archivo/internal/repository"
	"archivo/internal/storage"
)

// CandidateQuery filters the records offered for a new FUID. Usuario is a
// user id when numeric and a username otherwise. Dates are YYYY-MM-DD; a
// malformed date does not filter.
type CandidateQuery struct {
	Usuario     string
	FechaInicio string
	FechaFin    string
}

// ExportFile is a generated workbook ready to be sent.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ArchivedExport points at a workbook copy kept in object storage.
type ArchivedExport struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FUIDService implements the documentary inventory use cases.
type FUIDService interface {
	Create(ctx context.Context, pr authz.Principal, in FUIDInput) (*model.FUID, error)
	Get(ctx context.Context, pr authz.Principal, id int64) (*model.FUID, error)
	// Update saves the header and replaces the record set wholesale.
	Update(ctx context.Context, pr authz.Principal, id int64, in FUIDInput) (*model.FUID, error)
	List(ctx context.Context, pr authz.Principal, q grid.Query) (*PageResult[model.FUID], error)
	Candidates(ctx context.Context, q CandidateQuery) ([]model.ArchiveRecord, error)
	AttachRecord(ctx context.Context, pr authz.Principal, fuidID, recordID int64) error
	// CreateRecord creates a record owned by pr directly inside the FUID.
	CreateRecord(ctx context.Context, pr authz.Principal, fuidID int64, in RecordInput) (*model.ArchiveRecord, error)
	Export(ctx context.Context, pr authz.Principal, id int64) (*ExportFile, error)
	// Archive stores the workbook in object storage and returns a presigned link.
	Archive(ctx context.Context, pr authz.Principal, id int64) (*ArchivedExport, error)
}

// FUIDDeps groups the collaborators of the FUID service. Store may be nil,
// which disables Archive.
type FUIDDeps struct {
	FUIDs    repository.FUIDRepository
	Records  repository.RecordRepository
	Creator  RecordService
	Policy   *authz.Policy
	Exporter *export.Exporter
	Store    storage.ObjectStore
	LinkTTL  time.Duration
	Location *time.Location
}

type fuidService struct {
	FUIDDeps
	now func() time.Time
}

// NewFUIDService constructs a FUIDService.
func NewFUIDService(deps FUIDDeps) FUIDService {
	if deps.Location == nil {
		deps.Location = time.UTC
	}
	if deps.LinkTTL <= 0 {
		deps.LinkTTL = 15 * time.Minute
	}
	return &fuidService{FUIDDeps: deps, now: time.Now}
}

// checkOficina keeps non-superusers inside their own oficina productora. An
// empty oficina defaults to the caller's.
func checkOficina(pr authz.Principal, in *FUIDInput) error {
	if pr.Superuser {
		return nil
	}
	in.OficinaProductora = strings.TrimSpace(in.OficinaProductora)
	if in.OficinaProductora == "" {
		in.OficinaProductora = pr.Oficina
	}
	if pr.Oficina != "" && in.OficinaProductora != pr.Oficina {
		return fieldError("oficina_productora", msgOficina)
	}
	return nil
}

func (s *fuidService) Create(ctx context.Context, pr authz.Principal, in FUIDInput) (*model.FUID, error) {
	if err := checkOficina(pr, &in); err != nil {
		return nil, err
	}
	if err := validateStruct(&in); err != nil {
		return nil, err
	}
	if in.OficinaProductora == "" {
		return nil, fieldError("oficina_productora", msgRequired)
	}

	f := &model.FUID{CreadoPorID: &pr.ID}
	in.apply(f)
	if err := s.Policy.AuthorizeFUID(ctx, pr, authz.ActionCreate, f); err != nil {
		return nil, err
	}

	created, err := s.FUIDs.Create(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("create fuid: %w", mapRepoError(err, "registro_ids"))
	}
	return created, nil
}

func (s *fuidService) find(ctx context.Context, pr authz.Principal, action authz.Action, id int64) (*model.FUID, error) {
	f, err := s.FUIDs.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "")
	}
	if err := s.Policy.AuthorizeFUID(ctx, pr, action, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *fuidService) Get(ctx context.Context, pr authz.Principal, id int64) (*model.FUID, error) {
	return s.find(ctx, pr, authz.ActionView, id)
}

func (s *fuidService) Update(ctx context.Context, pr authz.Principal, id int64, in FUIDInput) (*model.FUID, error) {
	f, err := s.find(ctx, pr, authz.ActionEdit, id)
	if err != nil {
		return nil, err
	}
	if err := checkOficina(pr, &in); err != nil {
		return nil, err
	}
	if err := validateStruct(&in); err != nil {
		return nil, err
	}
	if in.OficinaProductora == "" {
		return nil, fieldError("oficina_productora", msgRequired)
	}
	in.apply(f)
	if f.RegistroIDs == nil {
		f.RegistroIDs = []int64{}
	}

	updated, err := s.FUIDs.Update(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("update fuid %d: %w", id, mapRepoError(err, "registro_ids"))
	}
	return updated, nil
}

func (s *fuidService) List(ctx context.Context, pr authz.Principal, q grid.Query) (*PageResult[model.FUID], error) {
	res, err := s.FUIDs.List(ctx, authz.ScopeFUIDs(pr), q)
	if err != nil {
		return nil, fmt.Errorf("list fuids: %w", err)
	}
	return pageFrom(res), nil
}

func (s *fuidService) Candidates(ctx context.Context, q CandidateQuery) ([]model.ArchiveRecord, error) {
	var f repository.CandidateFilter
	if u := strings.TrimSpace(q.Usuario); u != "" {
		if id, err := strconv.ParseInt(u, 10, 64); err == nil {
			f.CreatorID = id
		} else {
			f.Creator = u
		}
	}
	f.From = s.parseDay(q.FechaInicio)
	f.To = s.parseDay(q.FechaFin)

	items, err := s.Records.ListUnassigned(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return items, nil
}

// parseDay reads YYYY-MM-DD as local midnight.
func (s *fuidService) parseDay(v string) *time.Time {
	t, err := time.ParseInLocation(model.DateLayout, strings.TrimSpace(v), s.Location)
	if err != nil {
		return nil
	}
	return &t
}

func (s *fuidService) AttachRecord(ctx context.Context, pr authz.Principal, fuidID, recordID int64) error {
	if _, err := s.find(ctx, pr, authz.ActionEdit, fuidID); err != nil {
		return err
	}
	if _, err := s.Records.FindByID(ctx, recordID); err != nil {
		return mapRepoError(err, "")
	}
	if err := s.FUIDs.AttachRecord(ctx, fuidID, recordID); err != nil {
		return fmt.Errorf("attach record %d to fuid %d: %w", recordID, fuidID, mapRepoError(err, "registro_id"))
	}
	return nil
}

func (s *fuidService) CreateRecord(ctx context.Context, pr authz.Principal, fuidID int64, in RecordInput) (*model.ArchiveRecord, error) {
	if _, err := s.find(ctx, pr, authz.ActionEdit, fuidID); err != nil {
		return nil, err
	}
	return s.Creator.Create(ctx, pr, in, &fuidID)
}

func (s *fuidService) Export(ctx context.Context, pr authz.Principal, id int64) (*ExportFile, error) {
	f, err := s.find(ctx, pr, authz.ActionView, id)
	if err != nil {
		return nil, err
	}
	data, err := s.Exporter.Bytes(f)
	if err != nil {
		return nil, fmt.Errorf("export fuid %d: %w", id, err)
	}
	return &ExportFile{Name: export.FileName(id), ContentType: export.ContentType, Data: data}, nil
}

func (s *fuidService) Archive(ctx context.Context, pr authz.Principal, id int64) (*ArchivedExport, error) {
	if s.Store == nil {
		return nil, ErrStorageDisabled
	}
	file, err := s.Export(ctx, pr, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	key := storage.ExportKey(file.Name, now)
	info, err := s.Store.Put(ctx, key, bytes.NewReader(file.Data), storage.PutOptions{
		Size:        int64(len(file.Data)),
		ContentType: file.ContentType,
		Metadata: map[string]string{
			"fuid-id":     strconv.FormatInt(id, 10),
			"exported-by": pr.Username,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("archive fuid %d: %w", id, err)
	}
	url, err := s.Store.PresignGet(ctx, info.Key, s.LinkTTL)
	if err != nil {
		return nil, fmt.Errorf("presign fuid %d: %w", id, err)
	}
	return &ArchivedExport{Key: info.Key, URL: url, ExpiresAt: now.Add(s.LinkTTL).UTC()}, nil
}
