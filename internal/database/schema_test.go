package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/KianJanloo/burger-cafe-back/migrations"
)

func readMigration(t *testing.T, name string) string {
	t.Helper()
	content, err := fs.ReadFile(migrations.FS, name)
	if err != nil {
		t.Fatalf("Failed to read migration file %s: %v", name, err)
	}
	return string(content)
}

func TestMigrationFilesExist(t *testing.T) {
	expectedMigrations := []string{
		"00001_create_food_table.sql",
		"00002_create_comments_table.sql",
		"00003_create_footer_table.sql",
		"00004_create_cafe_details_table.sql",
		"00005_create_about_us_table.sql",
		"00006_create_team_member_table.sql",
		"00007_create_gallery_categories_table.sql",
		"00008_create_gallery_items_table.sql",
		"00009_create_reservation_table.sql",
		"00010_create_contact_us_table.sql",
		"00011_create_faq_table.sql",
		"00012_create_cart_table.sql",
		"00013_create_orders_table.sql",
	}

	for _, migration := range expectedMigrations {
		if _, err := fs.Stat(migrations.FS, migration); err != nil {
			t.Errorf("Migration file %s is not embedded: %v", migration, err)
		}
	}
}

func TestMigrationFilesHaveUpAndDown(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		t.Fatalf("Failed to list migrations: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("No SQL migration files found")
	}

	for _, name := range files {
		content := readMigration(t, name)
		for _, directive := range []string{
			"-- +goose Up",
			"-- +goose Down",
			"-- +goose StatementBegin",
			"-- +goose StatementEnd",
		} {
			if !strings.Contains(content, directive) {
				t.Errorf("Migration file %s missing '%s' directive", name, directive)
			}
		}
		if strings.Count(content, "-- +goose StatementBegin") != strings.Count(content, "-- +goose StatementEnd") {
			t.Errorf("Migration file %s has unbalanced statement blocks", name)
		}
	}
}

func TestMigrationFilesCreateExpectedTables(t *testing.T) {
	expectedTables := map[string]string{
		"food":               "00001_create_food_table.sql",
		"comments":           "00002_create_comments_table.sql",
		"footer":             "00003_create_footer_table.sql",
		"cafe_details":       "00004_create_cafe_details_table.sql",
		"about_us":           "00005_create_about_us_table.sql",
		"team_member":        "00006_create_team_member_table.sql",
		"gallery_categories": "00007_create_gallery_categories_table.sql",
		"gallery_items":      "00008_create_gallery_items_table.sql",
		"reservation":        "00009_create_reservation_table.sql",
		"contact_us":         "00010_create_contact_us_table.sql",
		"faq":                "00011_create_faq_table.sql",
		"cart":               "00012_create_cart_table.sql",
		"orders":             "00013_create_orders_table.sql",
	}

	for tableName, migrationFile := range expectedTables {
		content := readMigration(t, migrationFile)

		if !strings.Contains(content, "CREATE TABLE IF NOT EXISTS "+tableName+" (") {
			t.Errorf("Migration file %s does not create table %s", migrationFile, tableName)
		}
		if !strings.Contains(content, "DROP TABLE IF EXISTS "+tableName+";") {
			t.Errorf("Migration file %s does not drop table %s in down section", migrationFile, tableName)
		}
		if !strings.Contains(content, "id BIGSERIAL PRIMARY KEY") {
			t.Errorf("Table %s missing integer identity", tableName)
		}
		for _, column := range []string{"created_at TIMESTAMP", "updated_at TIMESTAMP"} {
			if !strings.Contains(content, column) {
				t.Errorf("Table %s missing column definition: %s", tableName, column)
			}
		}
	}
}

func TestStatusColumnsAreConstrained(t *testing.T) {
	cases := map[string][]string{
		"00009_create_reservation_table.sql": {"pending", "confirmed", "cancelled", "completed"},
		"00010_create_contact_us_table.sql":  {"pending", "in_progress", "resolved", "closed"},
		"00013_create_orders_table.sql":      {"pending", "confirmed", "preparing", "ready", "delivered", "cancelled"},
	}

	for file, statuses := range cases {
		content := readMigration(t, file)
		if !strings.Contains(content, "CHECK (status IN (") {
			t.Errorf("%s has no status check constraint", file)
		}
		for _, status := range statuses {
			if !strings.Contains(content, "'"+status+"'") {
				t.Errorf("%s status constraint missing value: %s", file, status)
			}
		}
	}
}

func TestOrdersTableHasUniqueOrderNumber(t *testing.T) {
	content := readMigration(t, "00013_create_orders_table.sql")

	if !strings.Contains(content, "order_number VARCHAR(50) NOT NULL UNIQUE") {
		t.Error("Orders table missing unique order_number")
	}
	if !strings.Contains(content, "items JSONB NOT NULL") {
		t.Error("Orders table must store line items as JSONB")
	}
}

func TestGalleryItemsHaveNoForeignKey(t *testing.T) {
	content := readMigration(t, "00008_create_gallery_items_table.sql")

	// Deleting a category leaves its items in place.
	if strings.Contains(content, "REFERENCES") || strings.Contains(content, "FOREIGN KEY") {
		t.Error("gallery_items.category_id must not be a foreign key")
	}
}
