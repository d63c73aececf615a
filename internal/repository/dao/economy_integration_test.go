package dao

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

// TestMain spins up a throwaway Postgres container. Without a reachable
// Docker daemon every test in this package skips.
func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		log.Printf("docker is not available, skipping dao tests: %v", err)
		os.Exit(m.Run())
	}

	resource, err := pool.Run("postgres", "15-alpine", []string{
		"POSTGRES_USER=testuser",
		"POSTGRES_PASSWORD=testpass",
		"POSTGRES_DB=testdb",
	})
	if err != nil {
		log.Printf("could not start postgres container, skipping dao tests: %v", err)
		os.Exit(m.Run())
	}

	dsn := fmt.Sprintf("host=localhost port=%v user=testuser password=testpass dbname=testdb sslmode=disable",
		resource.GetPort("5432/tcp"))

	if err = pool.Retry(func() error {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return err
		}
		testDB = db

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}

		return sqlDB.Ping()
	}); err != nil {
		log.Printf("could not connect to postgres container: %v", err)
		_ = pool.Purge(resource)
		os.Exit(1)
	}

	if err = InitTables(testDB); err != nil {
		log.Printf("could not migrate tables: %v", err)
		_ = pool.Purge(resource)
		os.Exit(1)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres container: %v", err)
	}

	os.Exit(code)
}

func requireDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("docker is not available")
	}

	return testDB
}

func createTestCharacter(t *testing.T, db *gorm.DB, money int) Character {
	t.Helper()

	account := Account{Password: "hash"}
	account.LoginID = fmt.Sprintf("acct%p", &account)
	require.NoError(t, db.Create(&account).Error)

	character := Character{
		AccountID: account.ID,
		Name:      fmt.Sprintf("char-%p", &account),
		Money:     money,
		Health:    500,
		Power:     100,
	}
	require.NoError(t, db.Create(&character).Error)

	return character
}

func TestEconomyDAO_WithCharacterState(t *testing.T) {
	db := requireDB(t)
	d := NewEconomyDAO(db)

	t.Run("persists ledger, stacks and equipment changes", func(t *testing.T) {
		character := createTestCharacter(t, db, 10000)

		_, err := d.WithCharacterState(context.Background(), character.ID, func(state *CharacterEconomyState) error {
			state.Character.Money = 8500
			state.Stacks = append(state.Stacks, InventoryStack{ItemCode: 101, Count: 3})
			state.Equipped = append(state.Equipped, EquippedItem{ItemCode: 202})

			return nil
		})
		require.NoError(t, err)

		state, err := d.GetCharacterState(context.Background(), character.ID)
		require.NoError(t, err)
		assert.Equal(t, 8500, state.Character.Money)
		require.Len(t, state.Stacks, 1)
		assert.Equal(t, 101, state.Stacks[0].ItemCode)
		assert.Equal(t, 3, state.Stacks[0].Count)
		require.Len(t, state.Equipped, 1)
		assert.Equal(t, 202, state.Equipped[0].ItemCode)
	})

	t.Run("rolls everything back when fn fails", func(t *testing.T) {
		character := createTestCharacter(t, db, 10000)
		boom := errors.New("boom")

		_, err := d.WithCharacterState(context.Background(), character.ID, func(state *CharacterEconomyState) error {
			state.Character.Money = 0
			state.Stacks = append(state.Stacks, InventoryStack{ItemCode: 101, Count: 1})

			return boom
		})
		require.ErrorIs(t, err, boom)

		state, err := d.GetCharacterState(context.Background(), character.ID)
		require.NoError(t, err)
		assert.Equal(t, 10000, state.Character.Money)
		assert.Empty(t, state.Stacks)
	})

	t.Run("an unknown character fails", func(t *testing.T) {
		_, err := d.WithCharacterState(context.Background(), 999999, func(state *CharacterEconomyState) error {
			return nil
		})

		require.ErrorIs(t, err, ErrCharacterNotFound)
	})

	t.Run("concurrent transactions on one character serialize on the row lock", func(t *testing.T) {
		character := createTestCharacter(t, db, 0)

		const workers = 8
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := d.WithCharacterState(context.Background(), character.ID, func(state *CharacterEconomyState) error {
					state.Character.Money += 100

					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		state, err := d.GetCharacterState(context.Background(), character.ID)
		require.NoError(t, err)
		assert.Equal(t, workers*100, state.Character.Money)
	})
}

func TestItemDAO_Insert(t *testing.T) {
	db := requireDB(t)
	d := NewItemDAO(db)

	t.Run("assigns a code when none is given", func(t *testing.T) {
		created, err := d.Insert(context.Background(), Item{Name: "Auto Coded Blade", Price: 100})

		require.NoError(t, err)
		assert.NotZero(t, created.Code)
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		_, err := d.Insert(context.Background(), Item{Name: "Duplicated Relic", Price: 100})
		require.NoError(t, err)

		_, err = d.Insert(context.Background(), Item{Name: "Duplicated Relic", Price: 200})
		require.ErrorIs(t, err, ErrItemNameExists)
	})

	t.Run("rejects a duplicate caller-assigned code", func(t *testing.T) {
		created, err := d.Insert(context.Background(), Item{Code: 777777, Name: "Coded Relic", Price: 100})
		require.NoError(t, err)

		_, err = d.Insert(context.Background(), Item{Code: created.Code, Name: "Another Relic", Price: 200})
		require.ErrorIs(t, err, ErrItemCodeExists)
	})
}
