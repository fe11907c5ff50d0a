// Command generate_demo creates a SQLite database with sample study groups,
// decks and flashcards.
// Usage: go run ./cmd/generate_demo [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/mrlokans/studygroups/internal/database"
	"github.com/mrlokans/studygroups/internal/storage"
)

const defaultDemoDatabasePath = "./demo/demo.db"

type demoCard struct {
	Question string
	Answer   string
}

type demoDeck struct {
	Name  string
	Cards []demoCard
}

type demoGroup struct {
	Name  string
	Decks []demoDeck
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create demo directory: %v", err)
	}

	db, err := database.NewDatabase(database.Options{
		Driver:   database.DriverSQLite,
		Path:     *dbPath,
		LogLevel: "warn",
	})
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	store := storage.NewFacade(db)
	if err := store.Setup(); err != nil {
		log.Fatalf("Failed to set up database: %v", err)
	}

	var creators []uint
	for _, name := range []string{"ada", "grace", "linus"} {
		user, err := store.CreateUser(name)
		if err != nil {
			log.Fatalf("Failed to create user %s: %v", name, err)
		}
		creators = append(creators, user.ID())
	}

	cards := 0
	for i, g := range demoGroups() {
		group, err := store.CreateStudyGroup(g.Name)
		if err != nil {
			log.Printf("Failed to create study group %s: %v", g.Name, err)
			continue
		}
		creator := creators[i%len(creators)]

		for _, d := range g.Decks {
			deck, err := store.CreateDeck(d.Name, creator, group.ID())
			if err != nil {
				log.Printf("Failed to create deck %s: %v", d.Name, err)
				continue
			}
			for _, c := range d.Cards {
				if _, err := store.CreateFlashcard(c.Question, c.Answer, creator, deck.ID()); err != nil {
					log.Printf("Failed to create flashcard %q: %v", c.Question, err)
					continue
				}
				cards++
			}
		}
		log.Printf("Saved: %s (%d decks)", g.Name, len(g.Decks))
	}

	log.Printf("Demo database generated successfully with %d flashcards!", cards)
}

func demoGroups() []demoGroup {
	return []demoGroup{
		{
			Name: "Biology 101",
			Decks: []demoDeck{
				{
					Name: "The Cell",
					Cards: []demoCard{
						{"What organelle produces most of the cell's ATP?", "The mitochondrion"},
						{"What structure controls what enters and leaves the cell?", "The plasma membrane"},
						{"Where are ribosomal subunits assembled?", "The nucleolus"},
					},
				},
				{
					Name: "Genetics",
					Cards: []demoCard{
						{"What are the four DNA bases?", "Adenine, thymine, guanine and cytosine"},
						{"What is a codon?", "A sequence of three nucleotides coding for one amino acid"},
					},
				},
			},
		},
		{
			Name: "Intro to Algorithms",
			Decks: []demoDeck{
				{
					Name: "Complexity",
					Cards: []demoCard{
						{"Worst-case time of binary search?", "O(log n)"},
						{"Average-case time of quicksort?", "O(n log n)"},
						{"Space used by merge sort on arrays?", "O(n)"},
					},
				},
			},
		},
		{
			Name: "Spanish Vocabulary",
			Decks: []demoDeck{
				{
					Name: "Food",
					Cards: []demoCard{
						{"la manzana", "the apple"},
						{"el pan", "the bread"},
						{"el queso", "the cheese"},
					},
				},
			},
		},
	}
}
