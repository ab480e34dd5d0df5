package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) listBusinesses(ctx context.Context) {
	businesses, err := a.businessService.List(ctx)
	if err != nil {
		a.renderError(err)
		return
	}
	renderBusinesses(os.Stdout, businesses)
}

// addBusiness prompts for the registration fields. Validation failures are
// shown per field; on success the listing is refreshed via the service
// callback.
func (a *App) addBusiness(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Business name", os.Stdout)
	if err != nil {
		return
	}
	email, err := getSimpleText(a.reader, "Business email", os.Stdout)
	if err != nil {
		return
	}
	phone, err := getSimpleText(a.reader, "Business phone (10 digits)", os.Stdout)
	if err != nil {
		return
	}

	created, err := a.businessService.Register(ctx, name, email, phone, func() {
		a.listBusinesses(ctx)
	})
	if err != nil {
		a.renderError(err)
		return
	}
	fmt.Printf("Business %q registered (id %d)\n", created.Name, created.ID)
}
