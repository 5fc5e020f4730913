// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

// registerDomainSteps registers steps that speak the application's domain:
// accounts, the category tree and transactions.
func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am registered as "([^"]*)" with password "([^"]*)"$`, iAmRegisteredAs)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	ctx.Step(`^I know the id of the category named "([^"]*)"$`, iKnowTheIDOfTheCategoryNamed)
	ctx.Step(`^I create a category named "([^"]*)" under "([^"]*)"$`, iCreateACategoryNamedUnder)
	ctx.Step(`^I create a transaction of "([^"]*)" dated "([^"]*)" in category "([^"]*)"$`, iCreateATransaction)
}

// categoryNode mirrors the tree node shape of the categories endpoint.
type categoryNode struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Children []categoryNode `json:"children"`
}

type categoryTree struct {
	Roots []categoryNode `json:"roots"`
}

func findCategory(nodes []categoryNode, name string) (categoryNode, bool) {
	for _, node := range nodes {
		if node.Name == name {
			return node, true
		}
		if found, ok := findCategory(node.Children, name); ok {
			return found, true
		}
	}
	return categoryNode{}, false
}

// rememberCategoryID fetches the caller's tree and stores the id of the
// category with the given name under that name.
func (tc *TestContext) rememberCategoryID(name string) error {
	if err := tc.doRequest(http.MethodGet, "/api/v1/categories", nil); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("listing categories failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var tree categoryTree
	if err := json.Unmarshal(tc.responseBody, &tree); err != nil {
		return fmt.Errorf("failed to parse category tree: %w", err)
	}

	node, ok := findCategory(tree.Roots, name)
	if !ok {
		return fmt.Errorf("category %q not found in tree: %s", name, string(tc.responseBody))
	}
	tc.ids[name] = node.ID
	return nil
}

func iAmRegisteredAs(ctx context.Context, email, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/register", []byte(body)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &resp); err != nil {
		return ctx, fmt.Errorf("failed to parse registration response: %w", err)
	}
	tc.accessToken = resp.AccessToken
	tc.refreshToken = resp.RefreshToken

	return SetTestContext(ctx, tc), nil
}

func iAmNotAuthenticated(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	tc.refreshToken = ""
	return SetTestContext(ctx, tc), nil
}

func iKnowTheIDOfTheCategoryNamed(ctx context.Context, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.rememberCategoryID(name); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iCreateACategoryNamedUnder(ctx context.Context, name, parentName string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	if _, ok := tc.ids[parentName]; !ok {
		if err := tc.rememberCategoryID(parentName); err != nil {
			return ctx, err
		}
	}

	body := fmt.Sprintf(`{"name":%q,"parent_id":%q}`, name, tc.ids[parentName])
	if err := tc.doRequest(http.MethodPost, "/api/v1/categories", []byte(body)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("creating category %q failed with status %d: %s", name, tc.response.StatusCode, string(tc.responseBody))
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &resp); err != nil {
		return ctx, fmt.Errorf("failed to parse category response: %w", err)
	}
	tc.ids[name] = resp.ID

	return SetTestContext(ctx, tc), nil
}

func iCreateATransaction(ctx context.Context, amount, date, categoryName string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	if _, ok := tc.ids[categoryName]; !ok {
		if err := tc.rememberCategoryID(categoryName); err != nil {
			return ctx, err
		}
	}

	body := fmt.Sprintf(`{"category_id":%q,"amount":%q,"date":%q}`, tc.ids[categoryName], amount, date)
	if err := tc.doRequest(http.MethodPost, "/api/v1/transactions", []byte(body)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("creating transaction failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(tc.responseBody, &resp); err != nil {
		return ctx, fmt.Errorf("failed to parse transaction response: %w", err)
	}
	tc.ids["last-transaction"] = resp.ID

	return SetTestContext(ctx, tc), nil
}
