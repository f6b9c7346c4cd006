package turnaround

import "math/rand"

// Insight is the two-beat narrative consequence of a choice: the immediate
// effect and the delayed one.
type Insight struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// Option is one side of a binary decision. The text variants are cosmetic
// rewordings of the same choice; the delta is fixed.
type Option struct {
	Variants [5]string
	Delta    ScoreVector
	Insight  Insight
}

// Decision is one of the 5 static decision points. Never created or
// mutated at runtime.
type Decision struct {
	Ordinal  int // 1-based position
	Title    string
	Month    string
	Scenario string
	A        Option
	B        Option
}

// Option returns the option for a choice. Anything that is not B is
// treated as A.
func (d *Decision) Option(c Choice) *Option {
	if c == ChoiceB {
		return &d.B
	}
	return &d.A
}

// ChoiceText returns the display text for a choice at a variant index,
// falling back to the first variant when the index is out of range.
func (d *Decision) ChoiceText(c Choice, variant int) string {
	o := d.Option(c)
	if variant < 0 || variant >= len(o.Variants) {
		return o.Variants[0]
	}
	return o.Variants[variant]
}

// TotalDecisions is the length of the catalog.
const TotalDecisions = 5

// VariantPair holds the variant index to display for each option of one
// decision.
type VariantPair struct {
	A int `json:"A"`
	B int `json:"B"`
}

// RandomVariantIndices draws one variant pair per decision. Called once
// when a game starts so the wording stays stable for the session.
func RandomVariantIndices() []VariantPair {
	pairs := make([]VariantPair, len(Catalog))
	for i := range pairs {
		pairs[i] = VariantPair{
			A: rand.Intn(len(Catalog[i].A.Variants)),
			B: rand.Intn(len(Catalog[i].B.Variants)),
		}
	}
	return pairs
}

// Catalog is the fixed, ordered decision list. Index i holds the decision
// with ordinal i+1.
var Catalog = []Decision{
	{
		Ordinal:  1,
		Title:    "The Readiness Dilemma",
		Month:    "Month 1",
		Scenario: "Gartner data reveals that most AI initiatives fail because organizations treat AI as a plug-and-play technology rather than a cultural shift. You have a $10M budget to kickstart your 12-month turnaround. How do you allocate it?",
		A: Option{
			Variants: [5]string{
				"Invest 90% of the budget in enterprise AI licenses to maximize immediate technological capabilities, leaving 10% for basic software training.",
				"Allocate the vast majority of funds to acquiring cutting-edge AI platforms immediately, with minimal investment in workforce preparation.",
				"Prioritize rapid technology acquisition—pour resources into best-in-class AI tools now and address training gaps later.",
				"Fast-track AI deployment by channeling 90% of capital into enterprise licenses, treating training as a secondary concern.",
				"Maximize technological firepower upfront: secure comprehensive AI licensing while keeping upskilling investment minimal.",
			},
			Delta: ScoreVector{IV: 20, OR: 15, HR: -20, TV: -5},
			Insight: Insight{
				First:  "You roll out shiny new tools globally in week one. Execution speed is incredible.",
				Second: "The tools become expensive \"shelfware.\" Employees lack the skills to prompt effectively, triggering deep cultural resistance and stalling your turnaround value completely.",
			},
		},
		B: Option{
			Variants: [5]string{
				"Split the budget 50/50—funding AI tools alongside a massive \"AI Literacy and Context Engineering\" upskilling program.",
				"Balance technology and people equally: invest half in AI platforms and half in building workforce AI fluency.",
				"Pursue a dual-track strategy—equal investment in tools and a comprehensive \"AI Readiness\" training initiative.",
				"Adopt a human-centered approach: match every dollar spent on AI tools with equivalent investment in employee upskilling.",
				"Build capabilities alongside technology: allocate equal resources to AI platforms and workforce transformation programs.",
			},
			Delta: ScoreVector{IV: 5, OR: -5, HR: 20, TV: 10},
			Insight: Insight{
				First:  "The rollout feels frustratingly slow. The board questions the heavy training expenditure in Q1.",
				Second: "By month four, highly literate \"fusion teams\" autonomously identify high-margin use cases. The foundation for rapid, compounding growth is locked in.",
			},
		},
	},
	{
		Ordinal:  2,
		Title:    "The Domain Crucible",
		Month:    "Month 4",
		Scenario: "Operations wants to deploy Generative AI to handle complex, highly regulated client data (e.g., claims processing, underwriting). Generic models hallucinate; Everest Group emphasizes the need for Domain-Specific Language Models (DSLMs).",
		A: Option{
			Variants: [5]string{
				"Deploy a generic, off-the-shelf LLM wrapper for a fast, cheap rollout to hit immediate quarterly targets.",
				"Launch quickly with a standard large language model—speed to market matters more than customization right now.",
				"Go with a ready-made AI solution to demonstrate rapid progress and satisfy short-term performance expectations.",
				"Opt for immediate deployment using an out-of-the-box LLM to show quick wins and meet this quarter's goals.",
				"Prioritize velocity: implement a generic AI model now to capture early mover advantage in the market.",
			},
			Delta: ScoreVector{IV: 25, OR: 30, HR: -10, TV: 0},
			Insight: Insight{
				First:  "Marketing announces a quick AI win. Analysts are impressed. Your stock ticks up on \"AI-first\" PR.",
				Second: "Claims errors surface; regulatory fines hit. Customer trust erodes. The short-term PR win becomes a long-term liability.",
			},
		},
		B: Option{
			Variants: [5]string{
				"Delay 60 days to fine-tune a Domain-Specific Language Model (DSLM) trained on proprietary enterprise data with robust RAG architecture.",
				"Invest two months in building a customized AI model trained specifically on your industry's regulatory requirements and internal data.",
				"Take time to develop a precision-tuned model with retrieval-augmented generation for accurate, compliant outputs.",
				"Accept a short-term delay to create a specialized AI system that truly understands your domain's complexity and compliance needs.",
				"Build it right: dedicate 60 days to training a model on proprietary data with enterprise-grade accuracy safeguards.",
			},
			Delta: ScoreVector{IV: -5, OR: -10, HR: 10, TV: 15},
			Insight: Insight{
				First:  "You face internal grumbling about delays. Competitors mock your \"slow\" AI strategy.",
				Second: "Your DSLM achieves 98% accuracy in regulated workflows. Clients consolidate more business with you, generating sticky, high-margin revenue.",
			},
		},
	},
	{
		Ordinal:  3,
		Title:    "The Agentic Shift",
		Month:    "Month 7",
		Scenario: "You've built capable AI tools, but productivity gains are capped at 10-15%. Gartner's research indicates that true step-change value comes from autonomous AI agents capable of multi-step reasoning without human intervention.",
		A: Option{
			Variants: [5]string{
				"Continue scaling human-supervised Copilots, keeping humans firmly in the loop for every task.",
				"Stay the course with AI assistants that require human approval at each step—safety and control remain paramount.",
				"Expand the current copilot model where employees guide and verify every AI action before execution.",
				"Maintain human oversight: scale AI tools that augment workers but never act independently.",
				"Stick with the proven approach: AI suggests, humans decide and execute on every workflow.",
			},
			Delta: ScoreVector{IV: -5, OR: -5, HR: 5, TV: 5},
			Insight: Insight{
				First:  "Operations feel incredibly safe. Output quality is highly consistent.",
				Second: "You hit a hard ceiling. Copilots yield only incremental 5–10% productivity gains. You mathematically fail to generate the 40% turnaround required.",
			},
		},
		B: Option{
			Variants: [5]string{
				"Deploy an autonomous Multiagent System to negotiate and resolve tier-1 and tier-2 B2B disputes completely without human intervention.",
				"Unleash fully autonomous AI agents to handle routine business processes end-to-end without human touchpoints.",
				"Transition to agentic AI: let intelligent systems independently manage and resolve standard operational workflows.",
				"Empower AI agents with full autonomy to process, decide, and execute on lower-complexity business transactions.",
				"Make the leap to autonomous operations: deploy multi-agent systems that work 24/7 without human bottlenecks.",
			},
			Delta: ScoreVector{IV: 30, OR: 20, HR: -5, TV: 20},
			Insight: Insight{
				First:  "Agents instantly clear massive backlogs. Volume processing scales exponentially without adding headcount. Staff feels uneasy about being replaced.",
				Second: "You shift from tracking \"productivity\" to hard P&L impact. This is the operational leverage required to hit your aggressive financial goals.",
			},
		},
	},
	{
		Ordinal:  4,
		Title:    "The Trust & Governance Shield",
		Month:    "Month 10",
		Scenario: "With autonomous agents running loose, Gartner warns of \"death by AI\" litigation. A close competitor just suffered a massive data leak due to a prompt injection attack. The board is nervous.",
		A: Option{
			Variants: [5]string{
				"Hit the brakes. Mandate that all AI usage be paused until a multi-year, foolproof governance framework is established.",
				"Full stop on AI deployment—freeze all initiatives until comprehensive policies and safeguards are bulletproof.",
				"Halt everything: no AI moves forward until legal, compliance, and security teams sign off on an airtight framework.",
				"Pump the brakes completely—better to lose momentum than risk catastrophic governance failure.",
				"Shut down AI operations temporarily to build an ironclad governance structure before any further deployment.",
			},
			Delta: ScoreVector{IV: -40, OR: -20, HR: -15, TV: -20},
			Insight: Insight{
				First:  "Zero compliance breaches. The board enjoys total peace of mind regarding data leaks.",
				Second: "Complete stagnation. Competitors capture your market share. Your top talent leaves out of frustration, effectively killing the turnaround story.",
			},
		},
		B: Option{
			Variants: [5]string{
				"Invest aggressively in an AI Security Platform with real-time guardrails to dynamically monitor and quarantine rogue agent actions.",
				"Deploy cutting-edge AI governance tools that provide continuous monitoring and instant threat neutralization.",
				"Implement a \"secure by design\" approach: embed real-time safeguards that detect and contain risks without stopping innovation.",
				"Build security into the system: invest in dynamic guardrails that protect while preserving deployment velocity.",
				"Adopt an intelligent security layer that monitors AI behavior in real-time and automatically prevents harmful actions.",
			},
			Delta: ScoreVector{IV: 10, OR: -25, HR: 15, TV: 10},
			Insight: Insight{
				First:  "Security acts as a continuous monitor rather than a stop sign. Rogue actions are caught in milliseconds.",
				Second: "Employees feel safe innovating because the guardrails protect them. You sustain the high-speed deployment pace without triggering a regulatory disaster.",
			},
		},
	},
	{
		Ordinal:  5,
		Title:    "The Operating Model",
		Month:    "Month 12",
		Scenario: "You have successfully scaled AI across the enterprise and hit your initial efficiency targets. What is your ultimate strategic maneuver for the final operating model?",
		A: Option{
			Variants: [5]string{
				"The Automation Trap—Use the AI solely to automate legacy business processes, cut headcount, and immediately return cash to the bottom line.",
				"Maximize short-term returns: deploy AI primarily to reduce workforce costs and boost quarterly margins.",
				"Focus on efficiency extraction—automate existing workflows, reduce staff, and deliver immediate shareholder value.",
				"Take the cost-cutting path: leverage AI to streamline operations, minimize headcount, and accelerate profit margins.",
				"Pursue operational efficiency: use AI to automate repetitive tasks, downsize teams, and drive immediate financial results.",
			},
			Delta: ScoreVector{IV: 10, OR: 10, HR: -30, TV: 5},
			Insight: Insight{
				First:  "Immediate cost savings appear on the P&L. Margins look incredibly healthy for the quarter.",
				Second: "You hollow out the company's institutional knowledge. Culture collapses, and the short-term cash grab fails to sustain long-term enterprise value.",
			},
		},
		B: Option{
			Variants: [5]string{
				"The Value Creator—Fundamentally redesign the business model around human-AI orchestration to launch entirely new, high-margin analytics services.",
				"Transform the business: use AI to create new revenue streams and elevate your workforce to higher-value strategic roles.",
				"Reimagine the operating model—combine human creativity with AI power to unlock entirely new service offerings.",
				"Build for the future: redesign operations around human-AI collaboration to capture new market opportunities.",
				"Pursue value creation: leverage AI not just for efficiency, but to launch innovative services that generate premium margins.",
			},
			Delta: ScoreVector{IV: 15, OR: 5, HR: 25, TV: 25},
			Insight: Insight{
				First:  "Operations are fundamentally rewired, requiring intense executive focus to manage the friction of change.",
				Second: "The workforce is energized by doing higher-value work. You unlock net-new revenue streams, effortlessly blowing past the 40% turnaround target.",
			},
		},
	},
}
