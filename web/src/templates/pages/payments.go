package pages

import (
	"fmt"
	"strconv"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/format"
	"github.com/nfrund/learnhub/internal/payments"
)

// HistoryData is the payment history table. Admins see every user's
// payments.
type HistoryData struct {
	Viewer   domain.Viewer
	Payments []domain.PaymentHistory
}

func PaymentHistory(d HistoryData) cmp.Node {
	admin := d.Viewer.IsAdmin()
	title := "Payment history"
	if admin {
		title = "All payments"
	}
	if len(d.Payments) == 0 {
		return g.Section(g.H1(cmp.Text(title)), g.P(g.Class("meta"), cmp.Text("No payments yet.")))
	}
	return g.Section(
		g.H1(cmp.Text(title)),
		g.Table(
			g.THead(g.Tr(
				g.Th(cmp.Text("Course")),
				cmp.If(admin, g.Th(cmp.Text("User"))),
				g.Th(cmp.Text("Amount")),
				g.Th(cmp.Text("Method")),
				g.Th(cmp.Text("Status")),
				g.Th(cmp.Text("Created")),
				g.Th(cmp.Text("Paid")),
				g.Th(),
			)),
			g.TBody(cmp.Map(d.Payments, func(p domain.PaymentHistory) cmp.Node {
				return g.Tr(
					g.Td(cmp.Text(p.CourseTitle)),
					cmp.If(admin, g.Td(cmp.Text(p.UserName))),
					g.Td(cmp.Text(format.VND(p.Amount))),
					g.Td(cmp.Text(payments.MethodName(p.PaymentMethod))),
					g.Td(g.Span(g.Class("status "+payments.StatusClass(p.Status)), cmp.Text(payments.StatusName(p.Status)))),
					g.Td(cmp.Text(format.DateTime(p.CreatedAt))),
					g.Td(cmp.Text(format.DateTime(p.PaidAt))),
					g.Td(retryButton(p)),
				)
			})),
		),
	)
}

func retryButton(p domain.PaymentHistory) cmp.Node {
	if p.Status != domain.PaymentPending || p.TransactionID == "" {
		return nil
	}
	return g.Form(
		g.Method("post"), g.Action(fmt.Sprintf("/payments/history/%s/retry", p.TransactionID)),
		g.Button(g.Type("submit"), g.Class("btn btn-secondary"), cmp.Text("Complete payment")),
	)
}

// GatewayData backs both the gateway test page and the management panel.
type GatewayData struct {
	Title string
	// Action is where the test form posts.
	Action      string
	Management  bool
	Config      *domain.GatewayConfig
	ConfigRaw   string
	ConfigError string
	Missing     []string
	Form        domain.GatewayTestPayment
	Result      *domain.PaymentResponse
	ResultRaw   string
	ResultError string
	Cards       []payments.SandboxCard
}

func Gateway(d GatewayData) cmp.Node {
	return g.Div(
		g.H1(cmp.Text(d.Title)),
		g.Div(
			g.Class("gateway"),
			g.Div(
				gatewayConfig(d),
				gatewayForm(d),
				gatewayResult(d),
			),
			sandboxCards(d.Cards),
		),
	)
}

func gatewayConfig(d GatewayData) cmp.Node {
	var status cmp.Node
	switch {
	case d.ConfigError != "":
		status = g.Div(g.Class("flash flash-error"), cmp.Text(d.ConfigError))
	case d.Config != nil && d.Config.IsValid:
		status = g.Div(g.Class("flash flash-success"), cmp.Text("Gateway configuration is valid."))
	case d.Config != nil:
		status = g.Div(g.Class("flash flash-warning"),
			cmp.Text("Gateway configuration is incomplete."),
			g.Ul(cmp.Map(d.Missing, func(m string) cmp.Node { return g.Li(cmp.Text(m)) })),
		)
	}
	return g.Section(
		g.H2(cmp.Text("Configuration")),
		status,
		cmp.If(d.ConfigRaw != "", g.Pre(cmp.Text(d.ConfigRaw))),
	)
}

func gatewayForm(d GatewayData) cmp.Node {
	label := "Create test payment"
	if d.Management {
		label = "Run test"
	}
	return g.Section(
		g.H2(cmp.Text("Test payment")),
		g.Form(
			g.Method("post"), g.Action(d.Action),
			numberField("courseId", "Course ID", d.Form.CourseID, "1"),
			numberField("amount", "Amount (VND)", d.Form.Amount, "10000"),
			g.Div(
				g.Class("field"),
				g.Label(g.For("orderInfo"), cmp.Text("Order info")),
				g.Input(g.ID("orderInfo"), g.Name("orderInfo"), g.Type("text"), g.Value(d.Form.OrderInfo), g.Required()),
			),
			g.Button(g.Type("submit"), g.Class("btn"), cmp.Text(label)),
		),
	)
}

func numberField(name, label string, value int64, min string) cmp.Node {
	return g.Div(
		g.Class("field"),
		g.Label(g.For(name), cmp.Text(label)),
		g.Input(g.ID(name), g.Name(name), g.Type("number"), g.Min(min), g.Value(strconv.FormatInt(value, 10)), g.Required()),
	)
}

func gatewayResult(d GatewayData) cmp.Node {
	switch {
	case d.ResultError != "":
		return g.Section(
			g.H2(cmp.Text("Result")),
			g.Div(g.Class("flash flash-error"), cmp.Text(d.ResultError)),
			cmp.If(d.ResultRaw != "", g.Pre(cmp.Text(d.ResultRaw))),
		)
	case d.Result != nil:
		class := "flash flash-error"
		if d.Result.Success {
			class = "flash flash-success"
		}
		return g.Section(
			g.H2(cmp.Text("Result")),
			g.Div(g.Class(class), cmp.Text(d.Result.Message)),
			cmp.If(d.Result.PaymentURL != "", g.P(
				g.A(g.Href(d.Result.PaymentURL), g.Target("_blank"), g.Rel("noopener"), cmp.Text("Open payment page")),
			)),
			cmp.If(d.ResultRaw != "", g.Pre(cmp.Text(d.ResultRaw))),
		)
	}
	return nil
}

func sandboxCards(cards []payments.SandboxCard) cmp.Node {
	return g.Aside(
		g.H2(cmp.Text("Sandbox cards")),
		cmp.Map(cards, func(c payments.SandboxCard) cmp.Node {
			outcome := "Declined"
			if c.Successful {
				outcome = "Successful"
			}
			return g.Dl(
				g.Class("card sandbox"),
				g.Dt(cmp.Text("Bank")), g.Dd(cmp.Text(c.Bank)),
				g.Dt(cmp.Text("Card number")), g.Dd(g.Code(cmp.Text(c.Number))),
				g.Dt(cmp.Text("Holder")), g.Dd(cmp.Text(c.Holder)),
				g.Dt(cmp.Text("Issue date")), g.Dd(cmp.Text(c.IssueDate)),
				g.Dt(cmp.Text("OTP")), g.Dd(g.Code(cmp.Text(c.OTP))),
				g.Dt(cmp.Text("Outcome")), g.Dd(cmp.Text(outcome)),
			)
		}),
	)
}
