package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/table-booking/internal/db"
	"github.com/BruksfildServices01/table-booking/internal/models"
	"github.com/BruksfildServices01/table-booking/internal/validators"
)

type UserSeed struct {
	Name         string
	Email        string
	Restrictions []string
}

type RestaurantSeed struct {
	Name         string
	Address      string
	Endorsements []string
	Tables       []int // capacities, in insertion order
}

type Dataset struct {
	Restrictions []string
	Endorsements []string
	Users        []UserSeed
	Restaurants  []RestaurantSeed
}

// Result holds the ids assigned while applying a Dataset, in input order.
type Result struct {
	UserIDs       []uint
	RestaurantIDs []uint
	TableIDs      map[uint][]uint // restaurant id -> table ids
}

// Apply inserts ds in one transaction. Restrictions, endorsements and users
// are matched by their unique name/email so re-running is harmless;
// restaurants are always inserted.
func Apply(ctx context.Context, db *gorm.DB, ds Dataset) (*Result, error) {
	res := &Result{TableIDs: make(map[uint][]uint)}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restrictions := make(map[string]uint)
		for _, name := range ds.Restrictions {
			r := models.DietaryRestriction{Name: name}
			if err := tx.Where(models.DietaryRestriction{Name: name}).FirstOrCreate(&r).Error; err != nil {
				return err
			}
			restrictions[name] = r.ID
		}

		endorsements := make(map[string]uint)
		for _, name := range ds.Endorsements {
			e := models.Endorsement{Name: name}
			if err := tx.Where(models.Endorsement{Name: name}).FirstOrCreate(&e).Error; err != nil {
				return err
			}
			endorsements[name] = e.ID
		}

		for _, us := range ds.Users {
			if !validators.IsEmailValid(us.Email) {
				return fmt.Errorf("seed: invalid email %q", us.Email)
			}

			u := models.User{Name: us.Name, Email: us.Email}
			if err := tx.Where(models.User{Email: us.Email}).FirstOrCreate(&u).Error; err != nil {
				return err
			}
			res.UserIDs = append(res.UserIDs, u.ID)

			for _, name := range us.Restrictions {
				rid, ok := restrictions[name]
				if !ok {
					return fmt.Errorf("seed: user %q references unknown restriction %q", us.Email, name)
				}
				link := models.UserDietaryRestriction{UserID: u.ID, DietaryRestrictionID: rid}
				if err := tx.Where(link).FirstOrCreate(&link).Error; err != nil {
					return err
				}
			}
		}

		for _, rs := range ds.Restaurants {
			r := models.Restaurant{Name: rs.Name, Address: rs.Address}
			if err := tx.Create(&r).Error; err != nil {
				return err
			}
			res.RestaurantIDs = append(res.RestaurantIDs, r.ID)

			for _, name := range rs.Endorsements {
				eid, ok := endorsements[name]
				if !ok {
					return fmt.Errorf("seed: restaurant %q references unknown endorsement %q", rs.Name, name)
				}
				link := models.RestaurantEndorsement{RestaurantID: r.ID, EndorsementID: eid}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}

			for _, capacity := range rs.Tables {
				if capacity <= 0 {
					return fmt.Errorf("seed: restaurant %q has a table with capacity %d", rs.Name, capacity)
				}
				t := models.Table{RestaurantID: r.ID, Capacity: capacity}
				if err := tx.Create(&t).Error; err != nil {
					return err
				}
				res.TableIDs[r.ID] = append(res.TableIDs[r.ID], t.ID)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Reset drops every table and migrates the schema again.
func Reset(db *gorm.DB) error {
	all := dbpkg.Models()

	// children first
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return err
		}
	}

	return dbpkg.Migrate(db)
}
