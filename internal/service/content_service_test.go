package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "tripvista/internal/errors"
	"tripvista/internal/model"
	"tripvista/internal/repository"
)

// fakePackageRepo is an in-memory PackageRepository used to exercise the full
// create/read/update/delete flow without a database.
type fakePackageRepo struct {
	rows   map[uint]model.Package
	nextID uint
}

var _ repository.PackageRepository = (*fakePackageRepo)(nil)

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{rows: map[uint]model.Package{}, nextID: 1}
}

func (f *fakePackageRepo) Create(_ context.Context, pkg *model.Package) error {
	pkg.ID = f.nextID
	f.nextID++
	f.rows[pkg.ID] = *pkg
	return nil
}

func (f *fakePackageRepo) Update(_ context.Context, pkg *model.Package) error {
	if _, ok := f.rows[pkg.ID]; !ok {
		return apperrors.ErrNotFound
	}
	f.rows[pkg.ID] = *pkg
	return nil
}

func (f *fakePackageRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.rows[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakePackageRepo) FindByID(_ context.Context, id uint) (*model.Package, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &row, nil
}

func (f *fakePackageRepo) List(_ context.Context) ([]model.Package, error) {
	out := make([]model.Package, 0, len(f.rows))
	for _, row := range f.rows {
		out = append(out, row)
	}
	return out, nil
}

func (f *fakePackageRepo) ListByType(_ context.Context, packageType string) ([]model.Package, error) {
	var out []model.Package
	for _, row := range f.rows {
		if row.Type == packageType {
			out = append(out, row)
		}
	}
	return out, nil
}

func newContentWithPackageRepo(pkgRepo repository.PackageRepository) ContentService {
	return NewContentService(
		pkgRepo,
		new(MockServiceRepository),
		new(MockTestimonialRepository),
		new(MockTeamMemberRepository),
	)
}

func TestContentService_PackageCRUDRoundTrip(t *testing.T) {
	ctx := context.Background()
	content := newContentWithPackageRepo(newFakePackageRepo())

	pkg := &model.Package{
		Name:           "Goa Beach Escape",
		Description:    "Five days on the coast",
		Image:          "goa.jpg",
		Type:           model.PackageTypeNational,
		Price:          "24,999 INR",
		ContactName:    "Priya Nair",
		ContactPhone:   "+91 98450 12345",
		DurationDays:   5,
		DurationNights: 4,
	}
	require.NoError(t, content.CreatePackage(ctx, pkg))
	require.NotZero(t, pkg.ID)

	// Read back returns the same field values.
	got, err := content.GetPackage(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, pkg, got)

	// Update then read returns the updated values.
	updated, err := content.UpdatePackage(ctx, pkg.ID, &model.Package{
		Name:           "Goa Beach Escape Deluxe",
		Description:    "Six days on the coast",
		Type:           model.PackageTypeNational,
		Price:          "29,999 INR",
		ContactName:    "Priya Nair",
		ContactPhone:   "+91 98450 12345",
		DurationDays:   6,
		DurationNights: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Goa Beach Escape Deluxe", updated.Name)
	assert.Equal(t, 6, updated.DurationDays)

	got, err = content.GetPackage(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	// Delete then read yields NotFound.
	require.NoError(t, content.DeletePackage(ctx, pkg.ID))
	_, err = content.GetPackage(ctx, pkg.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestContentService_UpdatePackage_EmptyImageKeepsStoredFile(t *testing.T) {
	ctx := context.Background()
	content := newContentWithPackageRepo(newFakePackageRepo())

	pkg := &model.Package{Name: "Goa", Type: model.PackageTypeNational, Image: "goa.jpg"}
	require.NoError(t, content.CreatePackage(ctx, pkg))

	updated, err := content.UpdatePackage(ctx, pkg.ID, &model.Package{
		Name: "Goa",
		Type: model.PackageTypeNational,
		// No image submitted with this edit.
	})
	require.NoError(t, err)
	assert.Equal(t, "goa.jpg", updated.Image)

	// A new upload replaces it.
	updated, err = content.UpdatePackage(ctx, pkg.ID, &model.Package{
		Name:  "Goa",
		Type:  model.PackageTypeNational,
		Image: "goa-v2.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "goa-v2.jpg", updated.Image)
}

func TestContentService_UpdateTestimonial_NotFound(t *testing.T) {
	tRepo := new(MockTestimonialRepository)
	tRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, apperrors.ErrNotFound)

	content := NewContentService(
		new(MockPackageRepository),
		new(MockServiceRepository),
		tRepo,
		new(MockTeamMemberRepository),
	)

	_, err := content.UpdateTestimonial(context.Background(), 42, &model.Testimonial{Name: "x"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	tRepo.AssertExpectations(t)
}

func TestContentService_DeleteTeamMember_PropagatesNotFound(t *testing.T) {
	teamRepo := new(MockTeamMemberRepository)
	teamRepo.On("Delete", mock.Anything, uint(7)).Return(apperrors.ErrNotFound)

	content := NewContentService(
		new(MockPackageRepository),
		new(MockServiceRepository),
		new(MockTestimonialRepository),
		teamRepo,
	)

	err := content.DeleteTeamMember(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
