package generator

import (
	"context"
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/domain"
)

const (
	sentShare      = 50
	replyShare     = 40
	unrelatedShare = 10

	minReplyDelay = 3600
	maxReplyDelay = 864000

	history = 90 * 24 * time.Hour
)

var (
	Industries    = []string{"Tech", "Finance", "Healthcare", "Manufacturing", "Retail", "Education", "Non-Profit"}
	CompanySizes  = []string{"1-50", "51-200", "201-1000", "1000+"}
	ContactTitles = []string{"CEO", "CTO", "Founder", "VP of Sales", "HR Manager", "Software Engineer", "Marketing Director"}
	Agents        = []string{"Agent Alpha", "Agent Beta", "Agent Gamma"}
	InboundAgents = []string{"Manual", "N/A"}
	Cities        = []string{"New York", "San Francisco", "London", "Berlin", "Tokyo", "Singapore", "Mumbai", "Sydney", "Beijing", "Moscow"}

	replySentiments = []domain.Sentiment{domain.SentimentPositive, domain.SentimentNeutral, domain.SentimentNegative}
)

// Plan is how many rows of each kind a run produces
type Plan struct {
	Sent      int
	Replies   int
	Unrelated int
}

// Total is the number of rows in the plan
func (p Plan) Total() int {
	return p.Sent + p.Replies + p.Unrelated
}

// PlanFor splits count into sent outreach, replies to a share of it, and unrelated inbound mail
func PlanFor(count int) Plan {
	if count <= 0 {
		return Plan{}
	}
	sent := count * sentShare / 100
	return Plan{
		Sent:      sent,
		Replies:   sent * replyShare / 100,
		Unrelated: count * unrelatedShare / 100,
	}
}

// Generator produces synthetic outreach data. A non-zero seed reproduces the same rows for the same clock.
type Generator struct {
	faker       *gofakeit.Faker
	namespace   uuid.UUID
	senderEmail string
	now         time.Time
	seq         uint64
	nextID      int64
}

// New creates a generator. Seed 0 draws a random seed.
func New(seed uint64, senderEmail string, now time.Time) *Generator {
	namespace := uuid.New()
	if seed != 0 {
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, seed)
		namespace = uuid.NewSHA1(uuid.NameSpaceOID, b)
	}

	return &Generator{
		faker:       gofakeit.New(seed),
		namespace:   namespace,
		senderEmail: senderEmail,
		now:         now.UTC().Truncate(time.Second),
		nextID:      1,
	}
}

// StartAt sets the id of the next produced row. Appending to a populated
// table starts one past its largest id.
func (g *Generator) StartAt(id int64) {
	if id < 1 {
		id = 1
	}
	g.nextID = id
}

// Produce writes the rows of PlanFor(count) to out and closes it.
// Each reply follows the sent row it answers.
func (g *Generator) Produce(ctx context.Context, count int, out chan<- *domain.Email) error {
	defer close(out)

	plan := PlanFor(count)

	replied := make([]bool, plan.Sent)
	picks := make([]int, plan.Sent)
	for i := range picks {
		picks[i] = i
	}
	g.faker.ShuffleInts(picks)
	for _, i := range picks[:plan.Replies] {
		replied[i] = true
	}

	emit := func(e *domain.Email) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- e:
			return nil
		}
	}

	for i := 0; i < plan.Sent; i++ {
		sent := g.sent()
		if err := emit(sent); err != nil {
			return err
		}
		if replied[i] {
			if err := emit(g.reply(sent)); err != nil {
				return err
			}
		}
	}

	for i := 0; i < plan.Unrelated; i++ {
		if err := emit(g.unrelated()); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generator) sent() *domain.Email {
	return &domain.Email{
		ID:              g.rowID(),
		MessageID:       g.messageID(),
		Timestamp:       g.between(g.now.Add(-history), g.now.Add(-24*time.Hour)),
		Direction:       domain.DirectionSent,
		SenderEmail:     g.senderEmail,
		RecipientEmail:  g.faker.Email(),
		CompanyName:     g.faker.Company(),
		CompanySize:     g.faker.RandomString(CompanySizes),
		CompanyIndustry: g.faker.RandomString(Industries),
		ContactTitle:    g.faker.RandomString(ContactTitles),
		ReplySentiment:  domain.SentimentNotApplicable,
		AIAgent:         g.faker.RandomString(Agents),
		City:            g.faker.RandomString(Cities),
	}
}

// reply answers sent, keeping its agent and city
func (g *Generator) reply(sent *domain.Email) *domain.Email {
	delay := int64(g.faker.IntRange(minReplyDelay, maxReplyDelay))

	return &domain.Email{
		ID:                    g.rowID(),
		MessageID:             g.messageID(),
		InReplyTo:             sent.MessageID,
		Timestamp:             sent.Timestamp.Add(time.Duration(delay) * time.Second),
		Direction:             domain.DirectionReceived,
		IsReply:               true,
		SenderEmail:           sent.RecipientEmail,
		RecipientEmail:        g.senderEmail,
		CompanyName:           g.faker.Company(),
		CompanySize:           g.faker.RandomString(CompanySizes),
		CompanyIndustry:       g.faker.RandomString(Industries),
		ContactTitle:          g.faker.RandomString(ContactTitles),
		ReplySentiment:        replySentiments[g.faker.IntRange(0, len(replySentiments)-1)],
		AIAgent:               sent.AIAgent,
		City:                  sent.City,
		ReplyTimeDeltaSeconds: &delay,
	}
}

func (g *Generator) unrelated() *domain.Email {
	return &domain.Email{
		ID:              g.rowID(),
		MessageID:       g.messageID(),
		Timestamp:       g.between(g.now.Add(-history), g.now),
		Direction:       domain.DirectionReceived,
		SenderEmail:     g.faker.Email(),
		RecipientEmail:  g.senderEmail,
		CompanyName:     g.faker.Company(),
		CompanySize:     g.faker.RandomString(CompanySizes),
		CompanyIndustry: g.faker.RandomString(Industries),
		ContactTitle:    g.faker.RandomString(ContactTitles),
		ReplySentiment:  domain.SentimentNotApplicable,
		AIAgent:         g.faker.RandomString(InboundAgents),
		City:            g.faker.RandomString(Cities),
	}
}

func (g *Generator) between(start, end time.Time) time.Time {
	span := int(end.Sub(start) / time.Second)
	return start.Add(time.Duration(g.faker.IntRange(0, span)) * time.Second)
}

func (g *Generator) rowID() int64 {
	id := g.nextID
	g.nextID++
	return id
}

func (g *Generator) messageID() string {
	g.seq++
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, g.seq)
	id := uuid.NewSHA1(g.namespace, b)

	domainPart := "example.com"
	if at := strings.LastIndex(g.senderEmail, "@"); at >= 0 && at < len(g.senderEmail)-1 {
		domainPart = g.senderEmail[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", id, domainPart)
}
