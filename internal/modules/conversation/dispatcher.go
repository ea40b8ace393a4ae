// README: Conversation dispatcher. Routes each chat turn through the
// menu, ordering and tracking flows and persists session state.
package conversation

import (
	"context"
	"errors"
	"log"
	"strings"

	"bookbot/internal/ai"
	"bookbot/internal/modules/catalog"
	"bookbot/internal/modules/order"
	"bookbot/internal/nlu"
)

// Catalog is the slice of the catalog service the dispatcher needs.
type Catalog interface {
	List(ctx context.Context) ([]catalog.Book, error)
	FindByTitle(ctx context.Context, title string) (*catalog.Book, error)
	Search(ctx context.Context, title string) ([]catalog.Book, error)
	ListTitles(ctx context.Context) ([]string, error)
}

// Orders is the slice of the order service the dispatcher needs.
type Orders interface {
	Create(ctx context.Context, cmd order.CreateCommand) (*order.Order, error)
	ListByCustomer(ctx context.Context, customerName string) ([]order.CustomerOrder, error)
}

// Phraser turns a prompt into a natural-language clarification question.
// It is optional; without one the fixed fallback questions are used.
type Phraser interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// IntentParser is the optional LLM second opinion consulted when the
// rule-based classifier cannot make sense of a free-text menu turn.
type IntentParser interface {
	ParseIntent(ctx context.Context, userMessage string) (*ai.IntentResult, error)
}

type Dispatcher struct {
	sessions SessionStore
	catalog  Catalog
	orders   Orders
	phraser  Phraser
	intents  IntentParser
}

func NewDispatcher(sessions SessionStore, cat Catalog, orders Orders, phraser Phraser, intents IntentParser) *Dispatcher {
	return &Dispatcher{sessions: sessions, catalog: cat, orders: orders, phraser: phraser, intents: intents}
}

// Handle processes one chat turn and returns the reply. State is
// written back only after the turn fully succeeds, so a failed turn
// leaves the stored session exactly as it was.
func (d *Dispatcher) Handle(ctx context.Context, sessionID, message string) (string, error) {
	message = nlu.CleanText(message)

	st, err := d.sessions.Get(ctx, sessionID)
	if err != nil {
		log.Printf("conversation: load session %s: %v", sessionID, err)
		return replyBusy, nil
	}
	if st == nil {
		st = NewState()
	}

	// '0' aborts whatever flow is active and returns to the menu.
	if message == "0" {
		st.Reset()
		if err := d.sessions.Put(ctx, sessionID, st); err != nil {
			log.Printf("conversation: save session %s: %v", sessionID, err)
			return replyBusy, nil
		}
		return replyBackToMenu, nil
	}

	var reply string
	switch st.Flow {
	case FlowOrdering:
		reply, err = d.handleOrdering(ctx, st, message)
	case FlowTracking:
		reply, err = d.handleTracking(ctx, st, message)
	default:
		reply, err = d.handleMenu(ctx, st, message)
	}
	if err != nil {
		log.Printf("conversation: session %s: %v", sessionID, err)
		return replyBusy, nil
	}

	if err := d.sessions.Put(ctx, sessionID, st); err != nil {
		log.Printf("conversation: save session %s: %v", sessionID, err)
		return replyBusy, nil
	}
	return reply, nil
}

func (d *Dispatcher) handleMenu(ctx context.Context, st *State, message string) (string, error) {
	switch message {
	case "1":
		st.Flow = FlowOrdering
		st.Slots = OrderSlots{}
		return replyOrderIntro, nil
	case "2":
		books, err := d.catalog.List(ctx)
		if err != nil {
			return "", err
		}
		if len(books) == 0 {
			return replyNoBooks, nil
		}
		return formatBookList(books), nil
	case "3":
		st.Flow = FlowTracking
		return replyTrackIntro, nil
	}

	// Free text at the menu: guess what the user wants instead of
	// forcing them through the numeric choices.
	switch nlu.Classify(message) {
	case nlu.IntentOrder:
		st.Flow = FlowOrdering
		st.Slots = OrderSlots{}
		return d.handleOrdering(ctx, st, message)
	case nlu.IntentSearch:
		return d.handleSearch(ctx, message)
	case nlu.IntentChitchat:
		return chitchatReply(message), nil
	}

	// The rules gave up. Ask the model, if one is wired in.
	if d.intents != nil {
		res, err := d.intents.ParseIntent(ctx, message)
		if err != nil {
			log.Printf("conversation: parse intent: %v", err)
			return replyMenu, nil
		}
		return d.handleParsedIntent(ctx, st, message, res)
	}
	return replyMenu, nil
}

func (d *Dispatcher) handleParsedIntent(ctx context.Context, st *State, message string, res *ai.IntentResult) (string, error) {
	switch res.Action {
	case "order":
		st.Flow = FlowOrdering
		titles, err := d.catalog.ListTitles(ctx)
		if err != nil {
			return "", err
		}
		// Rule extraction first, then the model's fields on top: the
		// model survives the explicit-mention guard, so where both
		// found a value the model's reading wins.
		st.Slots.Merge(nlu.Extract(message, titles))
		st.Slots.ApplyIntent(res)
		return d.continueOrdering(ctx, st)
	case "search":
		query := res.Filters.Title
		if query == "" {
			query = res.Filters.Author
		}
		if query == "" {
			query = message
		}
		books, err := d.catalog.Search(ctx, query)
		if err != nil {
			return "", err
		}
		if len(books) == 0 {
			return replyNoBooks, nil
		}
		return formatBookList(books), nil
	case "chitchat":
		return chitchatReply(message), nil
	}
	return replyMenu, nil
}

func chitchatReply(message string) string {
	if strings.Contains(nlu.Normalize(message), "chao") {
		return replyGreeting
	}
	return replyChitchat
}

func (d *Dispatcher) handleSearch(ctx context.Context, message string) (string, error) {
	titles, err := d.catalog.ListTitles(ctx)
	if err != nil {
		return "", err
	}
	ents := nlu.Extract(message, titles)
	query := ents.BookTitle
	if query == "" {
		query = message
	}
	books, err := d.catalog.Search(ctx, query)
	if err != nil {
		return "", err
	}
	if len(books) == 0 {
		return replyNoBooks, nil
	}
	return formatBookList(books), nil
}

func (d *Dispatcher) handleOrdering(ctx context.Context, st *State, message string) (string, error) {
	titles, err := d.catalog.ListTitles(ctx)
	if err != nil {
		return "", err
	}

	ents := nlu.Extract(message, titles)
	st.Slots.Merge(ents)
	return d.continueOrdering(ctx, st)
}

// continueOrdering picks up after the slots were updated: ask for the
// next missing field or commit the order when everything is in place.
func (d *Dispatcher) continueOrdering(ctx context.Context, st *State) (string, error) {
	if missing := st.Slots.Missing(); len(missing) != 0 {
		return d.askMissing(ctx, missing), nil
	}

	book, err := d.catalog.FindByTitle(ctx, st.Slots.BookTitle)
	if errors.Is(err, catalog.ErrNotFound) {
		// Keep everything else the user provided; only the title
		// needs another attempt.
		st.Slots.BookTitle = ""
		return replyBookNotInStock, nil
	}
	if err != nil {
		return "", err
	}

	o, err := d.orders.Create(ctx, order.CreateCommand{
		CustomerName: st.Slots.CustomerName,
		Phone:        st.Slots.Phone,
		Address:      st.Slots.Address,
		BookID:       book.ID,
		Quantity:     st.Slots.Quantity,
	})
	switch {
	case errors.Is(err, order.ErrInsufficientStock):
		return replyOutOfStock, nil
	case errors.Is(err, order.ErrNotFound):
		st.Slots.BookTitle = ""
		return replyBookNotInStock, nil
	case err != nil:
		return "", err
	}

	st.Reset()
	return formatConfirmation(o, book.Title), nil
}

// askMissing phrases a clarification question for the unfilled fields.
// The language model gets the full list; the fallback asks only for the
// highest-priority one.
func (d *Dispatcher) askMissing(ctx context.Context, missing []Field) string {
	if d.phraser != nil {
		question, err := d.phraser.Generate(ctx, clarificationPrompt(missing))
		if err == nil && strings.TrimSpace(question) != "" {
			return formatClarification(strings.TrimSpace(question))
		}
		if err != nil {
			log.Printf("conversation: phrase clarification: %v", err)
		}
	}
	return formatClarification(fallbackQuestions[missing[0]])
}

func (d *Dispatcher) handleTracking(ctx context.Context, st *State, message string) (string, error) {
	name := strings.TrimSpace(message)
	if name == "" {
		return replyTrackIntro, nil
	}

	orders, err := d.orders.ListByCustomer(ctx, name)
	if err != nil {
		return "", err
	}

	st.Reset()
	if len(orders) == 0 {
		return formatTrackingEmpty(name), nil
	}
	return formatTrackingResult(name, orders), nil
}
