package chart

import (
	"fmt"
	"strings"
)

// tooltipOverlay emits the single shared tooltip: one background rect and
// one text element, reused across all marks and owned by the renderer.
// Only one tooltip can be visible at a time.
func tooltipOverlay(svgID string, opts *Options) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`  <g id="%s-tooltip" class="tooltip">`+"\n", svgID))
	sb.WriteString(fmt.Sprintf(`    <rect id="%s-tooltip-bg" x="0" y="0" width="0" height="%d" rx="3" fill="#333" opacity="0.9"/>`+"\n",
		svgID, opts.FontSize+8))
	sb.WriteString(fmt.Sprintf(`    <text id="%s-tooltip-text" x="0" y="0" font-family="%s" font-size="%d" fill="#fff"></text>`+"\n",
		svgID, opts.FontFamily, opts.FontSize))
	sb.WriteString(`  </g>` + "\n")
	return sb.String()
}

// tooltipScript wires the shared tooltip to every mark's hover events.
// On move the text becomes "{scrobbles} scrobbles on {date}", the
// background adapts to the text bounding box plus padding, and the tooltip
// flips to the other side of the cursor once the local x passes the flip
// threshold so it never overflows the right edge.
func tooltipScript(svgID string) string {
	js := `  <script type="text/ecmascript"><![CDATA[
    (function () {
      var svg = document.getElementById("__ID__");
      if (!svg) return;
      var tip = document.getElementById("__ID__-tooltip");
      var bg = document.getElementById("__ID__-tooltip-bg");
      var text = document.getElementById("__ID__-tooltip-text");
      var pad = 5;
      var pt = svg.createSVGPoint();

      function localPoint(evt) {
        pt.x = evt.clientX;
        pt.y = evt.clientY;
        return pt.matrixTransform(svg.getScreenCTM().inverse());
      }

      var marks = svg.querySelectorAll(".mark");
      for (var i = 0; i < marks.length; i++) {
        var mark = marks[i];
        mark.addEventListener("mouseenter", function () {
          tip.style.visibility = "visible";
        });
        mark.addEventListener("mousemove", function (evt) {
          var n = evt.target.getAttribute("data-scrobbles");
          var d = evt.target.getAttribute("data-date");
          text.textContent = n + " scrobbles on " + d;
          var box = text.getBBox();
          var w = box.width + pad * 2;
          var p = localPoint(evt);
          var x = p.x + 10;
          if (p.x > __FLIP__) {
            x = p.x - w - 10;
          }
          bg.setAttribute("x", x);
          bg.setAttribute("y", p.y - 20);
          bg.setAttribute("width", w);
          text.setAttribute("x", x + pad);
          text.setAttribute("y", p.y - 7);
        });
        mark.addEventListener("mouseleave", function () {
          tip.style.visibility = "hidden";
          text.textContent = "";
        });
      }
    })();
  ]]></script>
`
	js = strings.ReplaceAll(js, "__ID__", svgID)
	js = strings.ReplaceAll(js, "__FLIP__", fmt.Sprintf("%d", tooltipFlipX))
	return js
}
