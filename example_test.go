package chatflow_test

import (
	"context"
	"fmt"
	"log"

	"github.com/rahultadvi/chatflow"
	"github.com/rahultadvi/chatflow/internal/adapters/memory"
	"github.com/rahultadvi/chatflow/pkg/flow"
)

// Example_authoring builds a small keyword-routed automation from scratch and
// saves it to an in-memory store.
func Example_authoring() {
	// 1. Open a fresh session. A nil record means "new automation".
	e := chatflow.New(nil)
	defer e.Close()

	e.SetName("keyword welcome")
	e.SetTrigger("new_conversation", nil)

	// 2. A conditions node routes on the contact's first message.
	cond, err := e.AddNode(flow.KindConditions)
	if err != nil {
		log.Fatal(err)
	}
	if err := e.AddKeyword("hi"); err != nil {
		log.Fatal(err)
	}

	// 3. A reply node answers it.
	reply, err := e.AddNode(flow.KindCustomReply)
	if err != nil {
		log.Fatal(err)
	}
	if err := e.PatchSelected(map[string]any{"message": "welcome aboard"}); err != nil {
		log.Fatal(err)
	}

	// 4. Wire start -> conditions -> reply.
	if _, err := e.Connect(flow.StartNodeID, cond.ID); err != nil {
		log.Fatal(err)
	}
	if _, err := e.Connect(cond.ID, reply.ID); err != nil {
		log.Fatal(err)
	}

	// 5. Save. The start node and its edge never reach the store.
	rec, err := e.Save(context.Background(), memory.NewStore())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("nodes:", len(rec.Nodes))
	fmt.Println("edges:", len(rec.Edges))
	// Output:
	// nodes: 2
	// edges: 1
}
