package seeders

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/app/repositories"
)

func init() {
	Register("hostings", seedHostings)
}

var demoHostings = []models.Hosting{
	{
		Ownername:       "Anita Rao",
		Placename:       "Lakeview Cottage",
		Address:         "12 Lake Road, Udaipur",
		Contactno:       "9876543210",
		Location:        "Udaipur",
		Image:           "https://images.example.com/lakeview.jpg",
		Price:           2500,
		Room:            2,
		Email:           "lakeview@rentalease.dev",
		PropertyDetails: "Two-bedroom cottage facing Lake Pichola.",
	},
	{
		Ownername:       "Rahul Mehta",
		Placename:       "Hilltop Retreat",
		Address:         "4 Mall Road, Manali",
		Contactno:       "9123456780",
		Location:        "Manali",
		Image:           "https://images.example.com/hilltop.jpg",
		Price:           1800,
		Room:            3,
		Email:           "hilltop@rentalease.dev",
		PropertyDetails: "Wooden chalet with valley views and a fireplace.",
	},
	{
		Ownername:       "Sara Thomas",
		Placename:       "Backwater Villa",
		Address:         "88 Canal Street, Alleppey",
		Contactno:       "9988776655",
		Location:        "Alleppey",
		Image:           "https://images.example.com/backwater.jpg",
		Price:           3200,
		Room:            4,
		Email:           "backwater@rentalease.dev",
		PropertyDetails: "Villa on the backwaters with a private jetty.",
	},
}

// seedHostings inserts the demo listings; ones already present (matched by
// email) are left alone.
func seedHostings(ctx context.Context, repos repositories.Set) error {
	for _, h := range demoHostings {
		if err := repos.Hostings.Create(ctx, &h); err != nil && !errors.Is(err, repositories.ErrDuplicate) {
			return err
		}
	}
	return nil
}
