package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chachabrian/covoiturage-backend/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestCreatePassengerAssignsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New[models.Passenger](db)

	mock.ExpectQuery(`INSERT INTO "passager"`).
		WithArgs("Mounguengui", "lucette", "076328520", "luce1219", "image").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	p := models.Passenger{
		LastName:    "Mounguengui",
		FirstName:   "lucette",
		PhoneNumber: "076328520",
		Password:    "luce1219",
		Photo:       "image",
	}
	require.NoError(t, repo.Create(context.Background(), &p))
	assert.Equal(t, uint(7), p.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWrapsStoreError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New[models.Driver](db)

	mock.ExpectQuery(`INSERT INTO "conducteur"`).WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), &models.Driver{LastName: "Nze"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllReturnsEmptySlice(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New[models.Passenger](db)

	mock.ExpectQuery(`SELECT \* FROM "passager"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nom_passager"}))

	rows, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllPreloadsTripRelations(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New[models.Trip](db, "Driver", "Reservations")

	mock.ExpectQuery(`SELECT \* FROM "trajet"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "id_du_conducteur", "point_de_depart", "point_d_arrivee", "prix"}).
			AddRow(1, 4, "Libreville", "Owendo", 2500.0))
	mock.ExpectQuery(`SELECT \* FROM "conducteur" WHERE "conducteur"."id" = \$1`).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nom_conducteur"}).AddRow(4, "Nze"))
	mock.ExpectQuery(`SELECT \* FROM "reservation" WHERE "reservation"."id_du_trajet" = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "id_du_trajet", "id_du_passager", "statut"}).
			AddRow(9, 1, 3, "confirmee"))

	trips, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, trips, 1)

	trip := trips[0]
	assert.Equal(t, "Libreville", trip.Departure)
	require.NotNil(t, trip.Driver)
	assert.Equal(t, "Nze", trip.Driver.LastName)
	require.Len(t, trip.Reservations, 1)
	assert.Equal(t, uint(3), trip.Reservations[0].PassengerID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllPreloadsReservationRelations(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New[models.Reservation](db, "Passenger", "Trip")

	mock.ExpectQuery(`SELECT \* FROM "reservation"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "id_du_trajet", "id_du_passager", "statut"}).
			AddRow(9, 1, 3, "confirmee"))
	mock.ExpectQuery(`SELECT \* FROM "passager" WHERE "passager"."id" = \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nom_passager", "prenom_passager"}).AddRow(3, "Mounguengui", "lucette"))
	mock.ExpectQuery(`SELECT \* FROM "trajet" WHERE "trajet"."id" = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "id_du_conducteur", "point_de_depart", "point_d_arrivee"}).
			AddRow(1, 4, "Libreville", "Owendo"))

	reservations, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, reservations, 1)

	r := reservations[0]
	assert.Equal(t, "confirmee", r.Status)
	require.NotNil(t, r.Passenger)
	assert.Equal(t, "Mounguengui", r.Passenger.LastName)
	require.NotNil(t, r.Trip)
	assert.Equal(t, "Owendo", r.Trip.Arrival)
	assert.Equal(t, uint(4), r.Trip.DriverID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateReplacesAndReloads(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New[models.Passenger](db)

	mock.ExpectExec(`UPDATE "passager" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "passager" WHERE "passager"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nom_passager", "prenom_passager", "numero_de_telephone", "mot_de_passe", "photo_passager"}).
			AddRow(5, "Ondo", "marie", "066000000", "nouveau", ""))

	p := models.Passenger{LastName: "Ondo", FirstName: "marie", PhoneNumber: "066000000", Password: "nouveau"}
	require.NoError(t, repo.Update(context.Background(), 5, &p))

	assert.Equal(t, uint(5), p.ID)
	assert.Equal(t, "Ondo", p.LastName)
	assert.Equal(t, "", p.Photo)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New[models.Passenger](db)

	mock.ExpectExec(`UPDATE "passager" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 404, &models.Passenger{LastName: "X"})
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New[models.Reservation](db)

	mock.ExpectExec(`DELETE FROM "reservation" WHERE "reservation"."id" = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New[models.Passenger](db)

	mock.ExpectExec(`DELETE FROM "passager"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
